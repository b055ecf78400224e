package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/session"
	apperrors "github.com/spec-kit/bank-crm/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	SessionID string
	Session   *session.Session
	Identity  domain.Identity
}

// AuthMiddleware validates bearer tokens and resolves the client session.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions *session.Registry
	onEnded  func(sessionID string)
}

// MiddlewareOption configures an AuthMiddleware.
type MiddlewareOption func(*AuthMiddleware)

// WithSessionEnded registers fn to run when a signed token names a session
// that is no longer bound, e.g. after its store entry expired.
func WithSessionEnded(fn func(sessionID string)) MiddlewareOption {
	return func(m *AuthMiddleware) { m.onEnded = fn }
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions *session.Registry, opts ...MiddlewareOption) *AuthMiddleware {
	m := &AuthMiddleware{tokens: tokens, sessions: sessions}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.resolve(c)
	if err != nil {
		return err
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// Optional resolves the caller when a valid token for a live session is
// presented and lets anonymous requests through otherwise.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	if principal, err := m.resolve(c); err == nil {
		c.Locals(principalKey, principal)
	}
	return c.Next()
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*Principal, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	sess, err := m.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	identity, ok := sess.Identity()
	if !ok {
		if m.onEnded != nil {
			m.onEnded(claims.SessionID)
		}
		return nil, apperrors.NewUnauthorized("session ended")
	}
	return &Principal{SessionID: claims.SessionID, Session: sess, Identity: identity}, nil
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
