package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// PostgresProvider reads records from the tables created by the migrations.
type PostgresProvider struct {
	pool *pgxpool.Pool
}

// NewPostgresProvider constructs the provider.
func NewPostgresProvider(pool *pgxpool.Pool) *PostgresProvider {
	return &PostgresProvider{pool: pool}
}

const (
	customerColumns = `id, name, email, phone, account_number, branch, relationship_manager,
        account_type, balance, status, kyc_status, join_date, last_activity`
	leadColumns = `id, name, email, phone, source, product, status, assigned_to, value,
        created_date, last_contact`
	ticketColumns = `id, customer_id, customer_name, subject, description, priority, status,
        assigned_to, category, created_date, sla_breach_time, last_updated`
)

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.AccountNumber, &c.Branch, &c.RelationshipManager,
		&c.AccountType, &c.Balance, &c.Status, &c.KYCStatus, &c.JoinDate, &c.LastActivity,
	)
	return c, err
}

func scanLead(row pgx.Row) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Source, &l.Product, &l.Status, &l.AssignedTo, &l.Value,
		&l.CreatedDate, &l.LastContact,
	)
	return l, err
}

func scanTicket(row pgx.Row) (domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(
		&t.ID, &t.CustomerID, &t.CustomerName, &t.Subject, &t.Description, &t.Priority, &t.Status,
		&t.AssignedTo, &t.Category, &t.CreatedDate, &t.SLABreachTime, &t.LastUpdated,
	)
	return t, err
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.AccountNumber, &t.Date, &t.Description, &t.Debit, &t.Credit, &t.Balance, &t.Type)
	return t, err
}

func scanMeeting(row pgx.Row) (domain.Meeting, error) {
	var m domain.Meeting
	err := row.Scan(&m.ID, &m.CustomerName, &m.CustomerID, &m.Date, &m.Time, &m.Purpose, &m.Status, &m.Location)
	return m, err
}

func scanReport(row pgx.Row) (domain.Report, error) {
	var r domain.Report
	err := row.Scan(&r.ID, &r.Name, &r.Type, &r.GeneratedDate, &r.Format, &r.Size)
	return r, err
}

func scanActivityLog(row pgx.Row) (domain.ActivityLog, error) {
	var a domain.ActivityLog
	err := row.Scan(&a.ID, &a.User, &a.Action, &a.Details, &a.Timestamp, &a.Type)
	return a, err
}

func scanKYCDocument(row pgx.Row) (domain.KYCDocument, error) {
	var k domain.KYCDocument
	err := row.Scan(&k.ID, &k.CustomerID, &k.CustomerName, &k.DocumentType, &k.Status, &k.UploadDate, &k.ReviewDate)
	return k, err
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, query, id string, scan func(pgx.Row) (T, error)) (*T, error) {
	item, err := scan(pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (p *PostgresProvider) Customers(ctx context.Context) ([]domain.Customer, error) {
	return queryAll(ctx, p.pool, `SELECT `+customerColumns+` FROM customers ORDER BY id`, scanCustomer)
}

func (p *PostgresProvider) Leads(ctx context.Context) ([]domain.Lead, error) {
	return queryAll(ctx, p.pool, `SELECT `+leadColumns+` FROM leads ORDER BY id`, scanLead)
}

func (p *PostgresProvider) Tickets(ctx context.Context) ([]domain.Ticket, error) {
	return queryAll(ctx, p.pool, `SELECT `+ticketColumns+` FROM tickets ORDER BY id`, scanTicket)
}

func (p *PostgresProvider) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	const query = `
        SELECT id, account_number, date, description, debit, credit, balance, type
        FROM transactions ORDER BY date DESC, id`
	return queryAll(ctx, p.pool, query, scanTransaction)
}

func (p *PostgresProvider) Meetings(ctx context.Context) ([]domain.Meeting, error) {
	const query = `
        SELECT id, customer_name, customer_id, date, time, purpose, status, location
        FROM meetings ORDER BY date, id`
	return queryAll(ctx, p.pool, query, scanMeeting)
}

func (p *PostgresProvider) Reports(ctx context.Context) ([]domain.Report, error) {
	const query = `
        SELECT id, name, type, generated_date, format, size
        FROM reports ORDER BY generated_date DESC, id`
	return queryAll(ctx, p.pool, query, scanReport)
}

func (p *PostgresProvider) ActivityLogs(ctx context.Context) ([]domain.ActivityLog, error) {
	const query = `
        SELECT id, "user", action, details, timestamp, type
        FROM activity_logs ORDER BY timestamp DESC`
	return queryAll(ctx, p.pool, query, scanActivityLog)
}

func (p *PostgresProvider) KYCDocuments(ctx context.Context) ([]domain.KYCDocument, error) {
	const query = `
        SELECT id, customer_id, customer_name, document_type, status, upload_date, review_date
        FROM kyc_documents ORDER BY id`
	return queryAll(ctx, p.pool, query, scanKYCDocument)
}

func (p *PostgresProvider) CustomerByID(ctx context.Context, id string) (*domain.Customer, error) {
	return queryOne(ctx, p.pool, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id, scanCustomer)
}

func (p *PostgresProvider) LeadByID(ctx context.Context, id string) (*domain.Lead, error) {
	return queryOne(ctx, p.pool, `SELECT `+leadColumns+` FROM leads WHERE id=$1`, id, scanLead)
}

func (p *PostgresProvider) TicketByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return queryOne(ctx, p.pool, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id, scanTicket)
}
