package dto

import (
	"time"

	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
)

// LoginRequest payload. Empty credentials are rejected by the session, not
// here, so they surface as invalid credentials.
type LoginRequest struct {
	Email    string      `json:"email" validate:"max=254"`
	Password string      `json:"password" validate:"max=72"`
	Role     domain.Role `json:"role" validate:"required,oneof=admin bank_manager relationship_manager support_agent customer"`
}

// AuthResponse carries the bearer token.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	SessionID string          `json:"session_id"`
	Auth      AuthResponse    `json:"auth"`
	Identity  domain.Identity `json:"identity"`
	View      dispatch.View   `json:"view"`
	Message   string          `json:"message"`
}

// RoleOption is one entry of the login form's role picker.
type RoleOption struct {
	Value domain.Role `json:"value"`
	Label string      `json:"label"`
}

// MeResponse describes the caller and the view they are dispatched to.
type MeResponse struct {
	Identity domain.Identity `json:"identity"`
	View     dispatch.View   `json:"view"`
	Title    string          `json:"title"`
}
