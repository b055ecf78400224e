package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/api/http/handlers"
	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Dashboard      *handlers.DashboardHandler
	Chat           *handlers.ChatHandler
	Overlays       *handlers.OverlayHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Show)

	authGroup := app.Group("/auth")
	authGroup.Get("/roles", cfg.Auth.Roles)
	authGroup.Post("/login", cfg.AuthMiddleware.Optional, cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)

	// Guarded routes are registered one by one so unknown paths still 404.
	guard := func(h ...fiber.Handler) []fiber.Handler {
		return append([]fiber.Handler{cfg.AuthMiddleware.Handle, auth.RequireAuthenticated()}, h...)
	}
	app.Get("/me", guard(cfg.Auth.Me)...)
	app.Get("/dashboard", guard(cfg.Dashboard.Show)...)

	app.Get("/chat", guard(cfg.Chat.Transcript)...)
	app.Post("/chat/messages", guard(cfg.Chat.Send)...)
	app.Post("/chat/open", guard(cfg.Chat.Open)...)
	app.Post("/chat/close", guard(cfg.Chat.Close)...)

	overlays := app.Group("/overlays")
	overlays.Post("/:kind/open", guard(cfg.Overlays.Open)...)
	overlays.Get("/:kind", guard(cfg.Overlays.Get)...)
	overlays.Patch("/:kind", guard(cfg.Overlays.Update)...)
	overlays.Delete("/:kind", guard(cfg.Overlays.Dismiss)...)
	overlays.Post("/:kind/actions/:action", guard(cfg.Overlays.Act)...)

	app.Get("/admin/action-log", guard(auth.RequireRole(domain.RoleAdmin), cfg.Admin.ActionLog)...)
}
