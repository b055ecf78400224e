package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/records"
	"github.com/spec-kit/bank-crm/internal/session"
)

func identityFor(t *testing.T, role domain.Role) *domain.Identity {
	t.Helper()
	identity, ok := session.CannedIdentity(role)
	require.True(t, ok)
	return &identity
}

func TestBuild_DispatchesEveryRole(t *testing.T) {
	b := NewBuilder(records.NewFixtures())
	tests := []struct {
		role     domain.Role
		view     dispatch.View
		bodyType any
	}{
		{domain.RoleAdmin, dispatch.ViewAdmin, AdminBody{}},
		{domain.RoleBankManager, dispatch.ViewBankManager, BankManagerBody{}},
		{domain.RoleRelationshipManager, dispatch.ViewRelationshipManager, RelationshipManagerBody{}},
		{domain.RoleSupportAgent, dispatch.ViewSupportAgent, SupportAgentBody{}},
		{domain.RoleCustomer, dispatch.ViewCustomer, CustomerBody{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			req := require.New(t)
			page, err := b.Build(context.Background(), identityFor(t, tt.role), "")
			req.NoError(err)
			req.Equal(tt.view, page.View)
			req.Equal(tt.view.Title(), page.Title)
			req.IsType(tt.bodyType, page.Body)
			req.Equal(tt.role, page.Identity.Role)
		})
	}
}

func TestBuild_NotFoundPlaceholder(t *testing.T) {
	req := require.New(t)
	b := NewBuilder(records.NewFixtures())

	page, err := b.Build(context.Background(), &domain.Identity{ID: "x", Role: "auditor"}, "")
	req.NoError(err)
	req.Equal(dispatch.ViewNotFound, page.View)
	req.Equal("Dashboard not found", page.Title)
	req.Equal(NotFoundBody{Message: notFoundMessage}, page.Body)

	page, err = b.Build(context.Background(), nil, "")
	req.NoError(err)
	req.Equal(dispatch.ViewNotFound, page.View)
	req.Nil(page.Identity)
}

func TestBuild_RelationshipManagerSeesOwnBook(t *testing.T) {
	req := require.New(t)
	page, err := NewBuilder(records.NewFixtures()).Build(context.Background(), identityFor(t, domain.RoleRelationshipManager), "")
	req.NoError(err)

	body := page.Body.(RelationshipManagerBody)
	req.Len(body.Customers, 2)
	for _, c := range body.Customers {
		req.Equal("Sarah Wilson", c.RelationshipManager)
	}
	req.Len(body.Leads, 2)
	for _, l := range body.Leads {
		req.Equal("Sarah Wilson", l.AssignedTo)
	}
	req.Len(body.KYCDocuments, 3)
}

func TestBuild_BankManagerScopedToBranch(t *testing.T) {
	req := require.New(t)
	page, err := NewBuilder(records.NewFixtures()).Build(context.Background(), identityFor(t, domain.RoleBankManager), "")
	req.NoError(err)

	body := page.Body.(BankManagerBody)
	req.Equal("Downtown Branch", body.Branch)
	req.Len(body.Customers, 2)
	req.Len(body.Leads, 3)
	req.Len(body.Meetings, 2)
	req.Len(body.RMPerformance, 3)
}

func TestBuild_SupportAgentHighPriority(t *testing.T) {
	req := require.New(t)
	page, err := NewBuilder(records.NewFixtures()).Build(context.Background(), identityFor(t, domain.RoleSupportAgent), "")
	req.NoError(err)

	body := page.Body.(SupportAgentBody)
	req.Len(body.Tickets, 3)
	req.Len(body.HighPriority, 1)
	req.Equal("TKT001", body.HighPriority[0].ID)
	req.Len(body.Customers, 3)
}

func TestBuild_AdminActivityCapped(t *testing.T) {
	req := require.New(t)
	page, err := NewBuilder(records.NewFixtures()).Build(context.Background(), identityFor(t, domain.RoleAdmin), "")
	req.NoError(err)

	body := page.Body.(AdminBody)
	req.LessOrEqual(len(body.ActivityLogs), 4)
	req.Len(body.Reports, 3)
	req.Len(body.UsersByRole, 4)
}

func TestBuild_SearchFilter(t *testing.T) {
	req := require.New(t)
	b := NewBuilder(records.NewFixtures())

	page, err := b.Build(context.Background(), identityFor(t, domain.RoleAdmin), "  EMILY ")
	req.NoError(err)
	req.Equal("EMILY", page.Query)
	body := page.Body.(AdminBody)
	req.Len(body.Customers, 1)
	req.Equal("Emily Johnson", body.Customers[0].Name)
	req.Len(body.Tickets, 1)
	req.Empty(body.Leads)

	page, err = b.Build(context.Background(), identityFor(t, domain.RoleCustomer), "salary")
	req.NoError(err)
	txns := page.Body.(CustomerBody).Transactions
	req.Len(txns, 1)
	req.Equal("TXN002", txns[0].ID)
}

type failingProvider struct {
	records.Provider
}

func (failingProvider) Customers(context.Context) ([]domain.Customer, error) {
	return nil, errors.New("db down")
}

func TestBuild_PropagatesProviderErrors(t *testing.T) {
	req := require.New(t)
	b := NewBuilder(failingProvider{Provider: records.NewFixtures()})

	_, err := b.Build(context.Background(), identityFor(t, domain.RoleAdmin), "")
	req.ErrorContains(err, "db down")

	page, err := b.Build(context.Background(), identityFor(t, domain.RoleCustomer), "")
	req.NoError(err, "customer view never reads customers")
	req.Equal(dispatch.ViewCustomer, page.View)
}
