package records

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// ErrNotFound is returned by the ByID lookups.
var ErrNotFound = errors.New("record not found")

// Provider serves the read-only CRM records the dashboards render.
type Provider interface {
	Customers(ctx context.Context) ([]domain.Customer, error)
	Leads(ctx context.Context) ([]domain.Lead, error)
	Tickets(ctx context.Context) ([]domain.Ticket, error)
	Transactions(ctx context.Context) ([]domain.Transaction, error)
	Meetings(ctx context.Context) ([]domain.Meeting, error)
	Reports(ctx context.Context) ([]domain.Report, error)
	ActivityLogs(ctx context.Context) ([]domain.ActivityLog, error)
	KYCDocuments(ctx context.Context) ([]domain.KYCDocument, error)

	CustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	LeadByID(ctx context.Context, id string) (*domain.Lead, error)
	TicketByID(ctx context.Context, id string) (*domain.Ticket, error)
}

// NewProvider returns the Postgres provider when a pool is configured and
// the in-memory fixtures otherwise.
func NewProvider(pool *pgxpool.Pool) Provider {
	if pool == nil {
		return NewFixtures()
	}
	return NewPostgresProvider(pool)
}
