package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/spec-kit/bank-crm/internal/api/dto"
	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/service"
	apperrors "github.com/spec-kit/bank-crm/pkg/util/errorutil"
)

// AuthHandler exposes login, logout and the caller's identity.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Roles handles GET /auth/roles.
func (h *AuthHandler) Roles(c *fiber.Ctx) error {
	roles := lo.Map(domain.Roles, func(r domain.Role, _ int) dto.RoleOption {
		return dto.RoleOption{Value: r, Label: r.Label()}
	})
	return c.JSON(fiber.Map{"data": roles})
}

// Login handles POST /auth/login. A caller that is already signed in keeps
// their session id, so a rejected attempt leaves the current identity alone.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	var sessionID string
	if p, ok := auth.PrincipalFromContext(c); ok {
		sessionID = p.SessionID
	}

	res, err := h.auth.Login(c.UserContext(), sessionID, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return apperrors.NewInvalidCredentials()
	case errors.Is(err, service.ErrUnknownRole):
		return apperrors.NewValidationError("role must be one of the five CRM roles", map[string]any{"role": req.Role})
	case err != nil:
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{
			SessionID: res.SessionID,
			Auth:      dto.AuthResponse{Token: res.Token, ExpiresAt: res.ExpiresAt},
			Identity:  res.Identity,
			View:      res.View,
			Message:   res.Message,
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(actorContext(c, p), p.SessionID, p.Session); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}

// Me handles GET /me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	view := dispatch.Dispatch(&p.Identity)
	return c.JSON(fiber.Map{
		"data": dto.MeResponse{Identity: p.Identity, View: view, Title: view.Title()},
	})
}
