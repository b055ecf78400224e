package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/events"
)

func principal(c *fiber.Ctx) (*auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return p, nil
}

// actorContext tags the request context with the caller so published
// events carry who did what.
func actorContext(c *fiber.Ctx, p *auth.Principal) context.Context {
	return events.WithActor(c.UserContext(), events.Actor{
		SessionID:  p.SessionID,
		IdentityID: p.Identity.ID,
		Role:       string(p.Identity.Role),
	})
}

// parseOptionalBody decodes the body into out unless it is empty.
func parseOptionalBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}
