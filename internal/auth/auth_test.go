package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/session"
	apperrors "github.com/spec-kit/bank-crm/pkg/util/errorutil"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	req := require.New(t)
	tm := NewTokenManager("secret", 5)

	token, expiresAt, err := tm.GenerateToken("sess-1", domain.RoleSupportAgent)
	req.NoError(err)
	req.WithinDuration(time.Now().Add(5*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	req.NoError(err)
	req.Equal("sess-1", claims.SessionID)
	req.Equal(domain.RoleSupportAgent, claims.Role)
}

func TestTokenManager_Rejects(t *testing.T) {
	req := require.New(t)
	tm := NewTokenManager("secret", 5)
	token, _, err := tm.GenerateToken("sess-1", domain.RoleAdmin)
	req.NoError(err)

	_, err = NewTokenManager("other", 5).ParseToken(token)
	req.Error(err)

	_, err = tm.ParseToken(token + "x")
	req.Error(err)

	expired := NewTokenManager("secret", 1)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.GenerateToken("sess-1", domain.RoleAdmin)
	req.NoError(err)
	_, err = tm.ParseToken(old)
	req.Error(err)

	empty, _, err := tm.GenerateToken("", domain.RoleAdmin)
	req.NoError(err)
	_, err = tm.ParseToken(empty)
	req.Error(err)
}

func TestBcryptVerifier(t *testing.T) {
	req := require.New(t)
	hash, err := HashPassword("hunter2", bcrypt.MinCost)
	req.NoError(err)

	v := NewBcryptVerifier(hash)
	req.True(v.Verify("admin@bank.com", "hunter2"))
	req.False(v.Verify("admin@bank.com", "wrong"))

	var _ session.Verifier = v
}

func newTestApp(t *testing.T, roles ...domain.Role) (*fiber.App, *TokenManager, *session.Registry) {
	t.Helper()
	tm := NewTokenManager("secret", 5)
	sessions := session.NewRegistry(session.NewMemoryStore(0))
	mw := NewAuthMiddleware(tm, sessions)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).SendString(fe.Message)
			}
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	app.Get("/me", mw.Handle, RequireRole(roles...), func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		require.True(t, ok)
		return c.SendString(p.Identity.Name)
	})
	return app, tm, sessions
}

func loggedIn(t *testing.T, tm *TokenManager, sessions *session.Registry, role domain.Role) string {
	t.Helper()
	ctx := context.Background()
	id := sessions.NewID()
	s, err := sessions.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, s.Login("x@bank.com", "pw", role))
	require.NoError(t, sessions.Save(ctx, id, s))
	token, _, err := tm.GenerateToken(id, role)
	require.NoError(t, err)
	return token
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	resp, err := app.Test(r)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestAuthMiddleware(t *testing.T) {
	req := require.New(t)
	app, tm, sessions := newTestApp(t)

	status, _ := call(t, app, "")
	req.Equal(http.StatusUnauthorized, status)

	status, _ = call(t, app, "Token abc")
	req.Equal(http.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer garbage")
	req.Equal(http.StatusUnauthorized, status)

	token := loggedIn(t, tm, sessions, domain.RoleBankManager)
	status, body := call(t, app, "Bearer "+token)
	req.Equal(http.StatusOK, status)
	req.Equal("John Manager", body)

	orphan, _, err := tm.GenerateToken("never-saved", domain.RoleAdmin)
	req.NoError(err)
	status, _ = call(t, app, "Bearer "+orphan)
	req.Equal(http.StatusUnauthorized, status)
}

func TestRequireRole(t *testing.T) {
	req := require.New(t)
	app, tm, sessions := newTestApp(t, domain.RoleAdmin)

	status, _ := call(t, app, "Bearer "+loggedIn(t, tm, sessions, domain.RoleCustomer))
	req.Equal(http.StatusForbidden, status)

	status, body := call(t, app, "Bearer "+loggedIn(t, tm, sessions, domain.RoleAdmin))
	req.Equal(http.StatusOK, status)
	req.Equal("Admin User", body)
}

func TestAuthMiddleware_Optional(t *testing.T) {
	req := require.New(t)
	tm := NewTokenManager("secret", 5)
	sessions := session.NewRegistry(session.NewMemoryStore(0))
	mw := NewAuthMiddleware(tm, sessions)

	app := fiber.New()
	app.Get("/me", mw.Optional, func(c *fiber.Ctx) error {
		if p, ok := PrincipalFromContext(c); ok {
			return c.SendString(p.Identity.Name)
		}
		return c.SendString("anonymous")
	})

	status, body := call(t, app, "")
	req.Equal(http.StatusOK, status)
	req.Equal("anonymous", body)

	status, body = call(t, app, "Bearer garbage")
	req.Equal(http.StatusOK, status)
	req.Equal("anonymous", body)

	_, body = call(t, app, "Bearer "+loggedIn(t, tm, sessions, domain.RoleSupportAgent))
	req.Equal("Mike Support", body)
}

func TestAuthMiddleware_SessionEndedHook(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	tm := NewTokenManager("secret", 5)
	sessions := session.NewRegistry(session.NewMemoryStore(0))
	var ended []string
	mw := NewAuthMiddleware(tm, sessions, WithSessionEnded(func(id string) { ended = append(ended, id) }))

	app := fiber.New()
	app.Get("/me", mw.Handle, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	id := sessions.NewID()
	s, err := sessions.Get(ctx, id)
	req.NoError(err)
	req.True(s.Login("x@bank.com", "pw", domain.RoleCustomer))
	req.NoError(sessions.Save(ctx, id, s))
	token, _, err := tm.GenerateToken(id, domain.RoleCustomer)
	req.NoError(err)

	status, _ := call(t, app, "Bearer "+token)
	req.Equal(http.StatusOK, status)
	req.Empty(ended)

	s.Logout()
	req.NoError(sessions.Save(ctx, id, s))

	status, _ = call(t, app, "Bearer "+token)
	req.Equal(http.StatusUnauthorized, status)
	req.Equal([]string{id}, ended)

	status, _ = call(t, app, "Bearer garbage")
	req.Equal(http.StatusUnauthorized, status)
	req.Len(ended, 1, "unsigned tokens never name a session")
}
