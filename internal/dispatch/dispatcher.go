// Package dispatch selects the top-level view for the current identity.
package dispatch

import (
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/session"
)

// View identifies a top-level screen.
type View string

const (
	ViewAdmin               View = "admin"
	ViewBankManager         View = "bank_manager"
	ViewRelationshipManager View = "relationship_manager"
	ViewSupportAgent        View = "support_agent"
	ViewCustomer            View = "customer"
	ViewNotFound            View = "not_found"
)

// Title returns the heading shown for v.
func (v View) Title() string {
	switch v {
	case ViewAdmin:
		return "Admin Dashboard"
	case ViewBankManager:
		return "Bank Manager Dashboard"
	case ViewRelationshipManager:
		return "Relationship Manager Dashboard"
	case ViewSupportAgent:
		return "Support Agent Dashboard"
	case ViewCustomer:
		return "Customer Dashboard"
	default:
		return "Dashboard not found"
	}
}

// Dispatch maps an identity to its view. It depends on the role only;
// a nil identity or an unrecognized role yields ViewNotFound.
func Dispatch(identity *domain.Identity) View {
	if identity == nil {
		return ViewNotFound
	}
	switch identity.Role {
	case domain.RoleAdmin:
		return ViewAdmin
	case domain.RoleBankManager:
		return ViewBankManager
	case domain.RoleRelationshipManager:
		return ViewRelationshipManager
	case domain.RoleSupportAgent:
		return ViewSupportAgent
	case domain.RoleCustomer:
		return ViewCustomer
	default:
		return ViewNotFound
	}
}

// DispatchSession dispatches on the session's current identity.
func DispatchSession(s *session.Session) View {
	if s == nil {
		return ViewNotFound
	}
	identity, ok := s.Identity()
	if !ok {
		return ViewNotFound
	}
	return Dispatch(&identity)
}
