package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/spec-kit/bank-crm/internal/auth"
	"github.com/spec-kit/bank-crm/internal/chatbot"
	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/events"
	"github.com/spec-kit/bank-crm/internal/overlay"
	"github.com/spec-kit/bank-crm/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownRole        = errors.New("unknown role")
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	SessionID string
	Token     string
	ExpiresAt time.Time
	Identity  domain.Identity
	View      dispatch.View
	Message   string
}

// AuthService binds identities to client sessions and tears down the
// per-session chat widget and overlays on logout.
type AuthService struct {
	sessions   *session.Registry
	tokens     *auth.TokenManager
	chats      *chatbot.Registry
	overlays   *overlay.Registry
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Sessions   *session.Registry
	Tokens     *auth.TokenManager
	Chats      *chatbot.Registry
	Overlays   *overlay.Registry
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		sessions:   deps.Sessions,
		tokens:     deps.Tokens,
		chats:      deps.Chats,
		overlays:   deps.Overlays,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// WelcomeMessage is shown after a successful login.
func WelcomeMessage(role domain.Role) string {
	return fmt.Sprintf("Welcome back! Redirecting to your %s dashboard.", role.Label())
}

// Login binds the canned identity for role to sessionID, or to a new session
// when sessionID is empty. On failure the session keeps its previous state.
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string, role domain.Role) (*LoginResult, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%q: %w", role, ErrUnknownRole)
	}
	if sessionID == "" {
		sessionID = s.sessions.NewID()
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Login(email, password, role) {
		s.logger.Info("login rejected", zap.String("session_id", sessionID), zap.String("role", string(role)))
		return nil, ErrInvalidCredentials
	}
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	identity, _ := sess.Identity()
	token, expiresAt, err := s.tokens.GenerateToken(sessionID, identity.Role)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventUserLoggedIn, sessionID, identity)
	return &LoginResult{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  identity,
		View:      dispatch.Dispatch(&identity),
		Message:   WelcomeMessage(identity.Role),
	}, nil
}

// Logout clears the session and releases its chat widget and overlays.
// Logging out an already anonymous session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string, sess *session.Session) error {
	identity, wasIn := sess.Identity()
	sess.Logout()
	if err := s.sessions.Save(ctx, sessionID, sess); err != nil {
		return err
	}
	s.Release(sessionID)
	if wasIn {
		s.publish(ctx, events.EventUserLoggedOut, sessionID, identity)
	}
	return nil
}

// Release destroys the chat widget and overlays owned by sessionID.
// Releasing a session that owns nothing is a no-op.
func (s *AuthService) Release(sessionID string) {
	if s.chats != nil {
		s.chats.Destroy(sessionID)
	}
	if s.overlays != nil {
		s.overlays.Drop(sessionID)
	}
}

// ReapExpired releases the widgets and overlays of every session whose
// binding has expired and returns how many sessions were released.
func (s *AuthService) ReapExpired(ctx context.Context) (int, error) {
	if swept := s.sessions.Sweep(); swept > 0 {
		s.logger.Debug("expired session bindings swept", zap.Int("count", swept))
	}

	var owners []string
	if s.chats != nil {
		owners = append(owners, s.chats.IDs()...)
	}
	if s.overlays != nil {
		owners = append(owners, s.overlays.IDs()...)
	}

	released := 0
	for _, id := range lo.Uniq(owners) {
		active, err := s.sessions.Active(ctx, id)
		if err != nil {
			return released, err
		}
		if active {
			continue
		}
		s.Release(id)
		released++
	}
	if released > 0 {
		s.logger.Info("released expired sessions", zap.Int("count", released))
	}
	return released, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, sessionID string, identity domain.Identity) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   identity.ID,
		Actor:     events.Actor{SessionID: sessionID, IdentityID: identity.ID, Role: string(identity.Role)},
		Timestamp: time.Now().UTC(),
		Payload:   events.SessionPayload{Role: string(identity.Role), Email: identity.Email},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish session event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
