package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/session"
)

func TestDispatch_KnownRoles(t *testing.T) {
	tests := map[domain.Role]View{
		domain.RoleAdmin:               ViewAdmin,
		domain.RoleBankManager:         ViewBankManager,
		domain.RoleRelationshipManager: ViewRelationshipManager,
		domain.RoleSupportAgent:        ViewSupportAgent,
		domain.RoleCustomer:            ViewCustomer,
	}
	req := require.New(t)
	req.Len(tests, len(domain.Roles))

	for role, expected := range tests {
		identity := &domain.Identity{ID: "x", Role: role}
		req.Equal(expected, Dispatch(identity), "role %s", role)
	}
}

func TestDispatch_Fallback(t *testing.T) {
	req := require.New(t)
	req.Equal(ViewNotFound, Dispatch(nil))
	req.Equal(ViewNotFound, Dispatch(&domain.Identity{Role: "bogus"}))
	req.Equal(ViewNotFound, Dispatch(&domain.Identity{}))
	req.Equal("Dashboard not found", ViewNotFound.Title())
}

func TestDispatch_DependsOnRoleOnly(t *testing.T) {
	req := require.New(t)
	a := &domain.Identity{ID: "1", Name: "A", Role: domain.RoleCustomer}
	b := &domain.Identity{ID: "99", Name: "B", Email: "b@x", Branch: "Uptown", Role: domain.RoleCustomer}
	req.Equal(Dispatch(a), Dispatch(b))
}

func TestDispatchSession_FollowsLoginAndLogout(t *testing.T) {
	req := require.New(t)
	s := session.New()
	req.Equal(ViewNotFound, DispatchSession(s))
	req.Equal(ViewNotFound, DispatchSession(nil))

	req.True(s.Login("a@b.com", "pw", domain.RoleSupportAgent))
	req.Equal(ViewSupportAgent, DispatchSession(s))

	s.Logout()
	req.Equal(ViewNotFound, DispatchSession(s))
}
