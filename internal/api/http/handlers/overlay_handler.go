package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/api/dto"
	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/overlay"
	apperrors "github.com/spec-kit/bank-crm/pkg/util/errorutil"
)

// OverlayHandler exposes the per-session overlay lifecycle.
type OverlayHandler struct {
	overlays *overlay.Registry
}

func NewOverlayHandler(overlays *overlay.Registry) *OverlayHandler {
	return &OverlayHandler{overlays: overlays}
}

type overlayTarget struct {
	principal *auth.Principal
	manager   *overlay.Manager
	kind      overlay.Kind
}

func (h *OverlayHandler) target(c *fiber.Ctx) (overlayTarget, error) {
	p, err := principal(c)
	if err != nil {
		return overlayTarget{}, err
	}
	kind, err := overlay.ParseKind(c.Params("kind"))
	if err != nil {
		return overlayTarget{}, overlayError(c.Params("kind"), err)
	}
	return overlayTarget{principal: p, manager: h.overlays.Get(p.SessionID), kind: kind}, nil
}

// Open handles POST /overlays/:kind/open.
func (h *OverlayHandler) Open(c *fiber.Ctx) error {
	t, err := h.target(c)
	if err != nil {
		return err
	}
	var req dto.OverlayOpenRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	snap, err := t.manager.Open(t.kind, req.Params)
	if err != nil {
		return overlayError(string(t.kind), err)
	}
	return c.JSON(fiber.Map{"data": snap})
}

// Get handles GET /overlays/:kind.
func (h *OverlayHandler) Get(c *fiber.Ctx) error {
	t, err := h.target(c)
	if err != nil {
		return err
	}
	snap, err := t.manager.Get(t.kind)
	if err != nil {
		return overlayError(string(t.kind), err)
	}
	return c.JSON(fiber.Map{"data": snap})
}

// Update handles PATCH /overlays/:kind.
func (h *OverlayHandler) Update(c *fiber.Ctx) error {
	t, err := h.target(c)
	if err != nil {
		return err
	}
	var req dto.OverlayUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	snap, err := t.manager.Update(t.kind, req.Fields)
	if err != nil {
		return overlayError(string(t.kind), err)
	}
	return c.JSON(fiber.Map{"data": snap})
}

// Act handles POST /overlays/:kind/actions/:action.
func (h *OverlayHandler) Act(c *fiber.Ctx) error {
	t, err := h.target(c)
	if err != nil {
		return err
	}
	var req dto.OverlayActionRequest
	if err := parseOptionalBody(c, &req); err != nil {
		return err
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	snap, res, err := t.manager.Act(actorContext(c, t.principal), t.kind, c.Params("action"), req.Input)
	if err != nil {
		return overlayError(string(t.kind), err)
	}
	return c.JSON(fiber.Map{"data": dto.OverlayActionResponse{Overlay: snap, Result: res}})
}

// Dismiss handles DELETE /overlays/:kind.
func (h *OverlayHandler) Dismiss(c *fiber.Ctx) error {
	t, err := h.target(c)
	if err != nil {
		return err
	}
	snap, err := t.manager.Dismiss(t.kind)
	if err != nil {
		return overlayError(string(t.kind), err)
	}
	return c.JSON(fiber.Map{"data": snap})
}

func overlayError(kind string, err error) error {
	switch {
	case errors.Is(err, overlay.ErrUnknownKind):
		return apperrors.NewNotFound("overlay kind", map[string]any{"kind": kind})
	case errors.Is(err, overlay.ErrClosed):
		return apperrors.NewOverlayClosed(kind)
	case errors.Is(err, overlay.ErrUnknownAction),
		errors.Is(err, overlay.ErrUnknownField),
		errors.Is(err, overlay.ErrInvalidInput):
		return apperrors.NewValidationError(err.Error(), map[string]any{"kind": kind})
	default:
		return err
	}
}
