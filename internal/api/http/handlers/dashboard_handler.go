package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/views"
)

// DashboardHandler renders the caller's role view.
type DashboardHandler struct {
	views *views.Builder
}

func NewDashboardHandler(builder *views.Builder) *DashboardHandler {
	return &DashboardHandler{views: builder}
}

// Show handles GET /dashboard?q=.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	page, err := h.views.Build(c.UserContext(), &p.Identity, c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": page})
}
