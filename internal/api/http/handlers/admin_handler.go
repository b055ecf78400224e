package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/service"
)

// AdminHandler exposes the recent action log to administrators.
type AdminHandler struct {
	actionLog *service.ActionLogService
}

func NewAdminHandler(actionLog *service.ActionLogService) *AdminHandler {
	return &AdminHandler{actionLog: actionLog}
}

// ActionLog handles GET /admin/action-log?limit=.
func (h *AdminHandler) ActionLog(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	return c.JSON(fiber.Map{"data": h.actionLog.Recent(limit)})
}
