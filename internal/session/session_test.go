package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bank-crm/internal/domain"
)

func TestSession_LoginBindsCannedIdentity(t *testing.T) {
	tests := []struct {
		role     domain.Role
		expected domain.Identity
	}{
		{domain.RoleAdmin, domain.Identity{ID: "1", Name: "Admin User", Email: "admin@bank.com", Role: domain.RoleAdmin, Avatar: "AU"}},
		{domain.RoleBankManager, domain.Identity{ID: "2", Name: "John Manager", Email: "john.manager@bank.com", Role: domain.RoleBankManager, Avatar: "JM", Branch: "Downtown Branch"}},
		{domain.RoleRelationshipManager, domain.Identity{ID: "3", Name: "Sarah Wilson", Email: "sarah.wilson@bank.com", Role: domain.RoleRelationshipManager, Avatar: "SW", Branch: "Downtown Branch"}},
		{domain.RoleSupportAgent, domain.Identity{ID: "4", Name: "Mike Support", Email: "mike.support@bank.com", Role: domain.RoleSupportAgent, Avatar: "MS"}},
		{domain.RoleCustomer, domain.Identity{ID: "5", Name: "Alice Customer", Email: "alice@email.com", Role: domain.RoleCustomer, Avatar: "AC"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.role), func(t *testing.T) {
			t.Parallel()
			req := require.New(t)
			s := New()

			req.True(s.Login("someone@example.com", "anything", tt.role))
			req.True(s.IsAuthenticated())

			identity, ok := s.Identity()
			req.True(ok)
			req.Equal(tt.expected, identity)
		})
	}
}

func TestSession_LoginRejectsMissingCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "x"},
		{"empty password", "x", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			fresh := New()
			req.False(fresh.Login(tt.email, tt.password, domain.RoleAdmin))
			req.False(fresh.IsAuthenticated())

			existing := New()
			req.True(existing.Login("a@b.com", "pw", domain.RoleCustomer))
			req.False(existing.Login(tt.email, tt.password, domain.RoleAdmin))
			identity, ok := existing.Identity()
			req.True(ok)
			req.Equal(domain.RoleCustomer, identity.Role)
		})
	}
}

func TestSession_LoginRejectsUnknownRole(t *testing.T) {
	req := require.New(t)
	s := New()
	req.False(s.Login("a@b.com", "pw", domain.Role("bogus")))
	req.False(s.IsAuthenticated())
}

func TestSession_LoginReplacesIdentity(t *testing.T) {
	req := require.New(t)
	s := New()
	req.True(s.Login("a@b.com", "pw", domain.RoleAdmin))
	req.True(s.Login("a@b.com", "pw", domain.RoleSupportAgent))

	identity, _ := s.Identity()
	req.Equal("4", identity.ID)
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	req := require.New(t)
	s := New()
	s.Logout()
	req.False(s.IsAuthenticated())

	for _, role := range domain.Roles {
		req.True(s.Login("a@b.com", "pw", role))
	}
	s.Logout()
	req.False(s.IsAuthenticated())
	s.Logout()
	req.False(s.IsAuthenticated())

	_, ok := s.Identity()
	req.False(ok)
}

func TestSession_IdentityIsACopy(t *testing.T) {
	req := require.New(t)
	s := New()
	req.True(s.Login("a@b.com", "pw", domain.RoleAdmin))

	identity, _ := s.Identity()
	identity.Name = "Mallory"

	again, _ := s.Identity()
	req.Equal("Admin User", again.Name)

	canned, ok := CannedIdentity(domain.RoleAdmin)
	req.True(ok)
	req.Equal("Admin User", canned.Name)
}

type stubVerifier struct{ accept bool }

func (v stubVerifier) Verify(string, string) bool { return v.accept }

func TestSession_WithVerifier(t *testing.T) {
	req := require.New(t)

	strict := New(WithVerifier(stubVerifier{accept: false}))
	req.False(strict.Login("a@b.com", "pw", domain.RoleAdmin))
	req.False(strict.IsAuthenticated())

	lenient := New(WithVerifier(stubVerifier{accept: true}))
	req.True(lenient.Login("a@b.com", "pw", domain.RoleAdmin))
}

func TestCannedIdentities_AreInjective(t *testing.T) {
	req := require.New(t)
	seen := make(map[string]domain.Role)
	for _, role := range domain.Roles {
		identity, ok := CannedIdentity(role)
		req.True(ok)
		req.Equal(role, identity.Role)
		prev, dup := seen[identity.ID]
		req.False(dup, "roles %s and %s share identity %s", prev, role, identity.ID)
		seen[identity.ID] = role
	}
}

func TestRegistry_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	reg := NewRegistry(NewMemoryStore(0))
	id := reg.NewID()

	s, err := reg.Get(ctx, id)
	req.NoError(err)
	req.False(s.IsAuthenticated())

	req.True(s.Login("a@b.com", "pw", domain.RoleBankManager))
	req.NoError(reg.Save(ctx, id, s))

	restored, err := reg.Get(ctx, id)
	req.NoError(err)
	identity, ok := restored.Identity()
	req.True(ok)
	req.Equal("John Manager", identity.Name)

	other, err := reg.Get(ctx, reg.NewID())
	req.NoError(err)
	req.False(other.IsAuthenticated())

	restored.Logout()
	req.NoError(reg.Save(ctx, id, restored))
	gone, err := reg.Get(ctx, id)
	req.NoError(err)
	req.False(gone.IsAuthenticated())
}

func TestMemoryStore_Closed(t *testing.T) {
	req := require.New(t)
	store := NewMemoryStore(0)
	req.NoError(store.Close())
	req.ErrorIs(store.Save(context.Background(), "x", domain.Identity{}), ErrStoreClosed)

	identity, err := store.Load(context.Background(), "x")
	req.NoError(err)
	req.Nil(identity)
}

func TestMemoryStore_SlidingTTL(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(10 * time.Minute)
	store.now = func() time.Time { return now }

	req.NoError(store.Save(ctx, "a", domain.Identity{ID: "1"}))
	req.NoError(store.Save(ctx, "b", domain.Identity{ID: "2"}))

	now = now.Add(8 * time.Minute)
	identity, err := store.Load(ctx, "a")
	req.NoError(err)
	req.Equal("1", identity.ID)

	now = now.Add(5 * time.Minute)
	ok, err := store.Exists(ctx, "b")
	req.NoError(err)
	req.False(ok, "b was never refreshed")
	ok, err = store.Exists(ctx, "a")
	req.NoError(err)
	req.True(ok, "load extended a")

	req.Equal(1, store.Sweep())
	req.Equal(1, store.Len())

	now = now.Add(10 * time.Minute)
	identity, err = store.Load(ctx, "a")
	req.NoError(err)
	req.Nil(identity)
	req.Zero(store.Len())
}

func TestMemoryStore_ExistsDoesNotRefresh(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }
	reg := NewRegistry(store)

	s := New()
	req.True(s.Login("a@b.com", "pw", domain.RoleAdmin))
	req.NoError(reg.Save(ctx, "a", s))

	for i := 0; i < 3; i++ {
		now = now.Add(25 * time.Second)
		_, _ = reg.Active(ctx, "a")
	}
	active, err := reg.Active(ctx, "a")
	req.NoError(err)
	req.False(active)

	active, err = reg.Active(ctx, "")
	req.NoError(err)
	req.False(active)

	restored, err := reg.Get(ctx, "a")
	req.NoError(err)
	req.False(restored.IsAuthenticated())
	req.Zero(store.Len(), "load drops the expired entry")
}
