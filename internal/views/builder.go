// Package views assembles the role dashboards from the record provider.
package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/spec-kit/bank-crm/internal/dispatch"
	"github.com/spec-kit/bank-crm/internal/domain"
	"github.com/spec-kit/bank-crm/internal/records"
)

const notFoundMessage = "No dashboard is available for your role."

// Builder renders the dispatched view for an identity.
type Builder struct {
	records records.Provider
}

func NewBuilder(provider records.Provider) *Builder {
	return &Builder{records: provider}
}

// Build dispatches on identity and renders its dashboard. q narrows the
// listed records by a case-insensitive substring.
func (b *Builder) Build(ctx context.Context, identity *domain.Identity, q string) (Page, error) {
	view := dispatch.Dispatch(identity)
	page := Page{View: view, Title: view.Title(), Query: strings.TrimSpace(q)}
	if identity != nil {
		id := *identity
		page.Identity = &id
	}

	f := newFilter(page.Query)
	var (
		body any
		err  error
	)
	switch view {
	case dispatch.ViewAdmin:
		body, err = b.admin(ctx, f)
	case dispatch.ViewBankManager:
		body, err = b.bankManager(ctx, identity, f)
	case dispatch.ViewRelationshipManager:
		body, err = b.relationshipManager(ctx, identity, f)
	case dispatch.ViewSupportAgent:
		body, err = b.supportAgent(ctx, f)
	case dispatch.ViewCustomer:
		body, err = b.customer(ctx, f)
	default:
		body = NotFoundBody{Message: notFoundMessage}
	}
	if err != nil {
		return Page{}, fmt.Errorf("build %s view: %w", view, err)
	}
	page.Body = body
	return page, nil
}

func (b *Builder) admin(ctx context.Context, f filter) (AdminBody, error) {
	customers, err := b.records.Customers(ctx)
	if err != nil {
		return AdminBody{}, err
	}
	leads, err := b.records.Leads(ctx)
	if err != nil {
		return AdminBody{}, err
	}
	tickets, err := b.records.Tickets(ctx)
	if err != nil {
		return AdminBody{}, err
	}
	logs, err := b.records.ActivityLogs(ctx)
	if err != nil {
		return AdminBody{}, err
	}
	reports, err := b.records.Reports(ctx)
	if err != nil {
		return AdminBody{}, err
	}
	return AdminBody{
		Stats:        adminStats,
		UsersByRole:  usersByRole,
		ActivityLogs: lo.Subset(logs, 0, 4),
		Customers:    f.customers(customers),
		Leads:        f.leads(leads),
		Tickets:      f.tickets(tickets),
		Reports:      lo.Filter(reports, func(r domain.Report, _ int) bool { return f.match(r.Name, r.Type) }),
	}, nil
}

func (b *Builder) bankManager(ctx context.Context, identity *domain.Identity, f filter) (BankManagerBody, error) {
	customers, err := b.records.Customers(ctx)
	if err != nil {
		return BankManagerBody{}, err
	}
	leads, err := b.records.Leads(ctx)
	if err != nil {
		return BankManagerBody{}, err
	}
	meetings, err := b.records.Meetings(ctx)
	if err != nil {
		return BankManagerBody{}, err
	}
	if identity.HasBranch() {
		customers = lo.Filter(customers, func(c domain.Customer, _ int) bool { return c.Branch == identity.Branch })
	}
	return BankManagerBody{
		Branch:        identity.Branch,
		Stats:         branchStats,
		RMPerformance: rmPerformance,
		PendingTasks:  managerTasks,
		Customers:     f.customers(customers),
		Leads:         f.leads(leads),
		Meetings:      lo.Filter(meetings, func(m domain.Meeting, _ int) bool { return f.match(m.CustomerName, m.Purpose) }),
	}, nil
}

func (b *Builder) relationshipManager(ctx context.Context, identity *domain.Identity, f filter) (RelationshipManagerBody, error) {
	customers, err := b.records.Customers(ctx)
	if err != nil {
		return RelationshipManagerBody{}, err
	}
	leads, err := b.records.Leads(ctx)
	if err != nil {
		return RelationshipManagerBody{}, err
	}
	docs, err := b.records.KYCDocuments(ctx)
	if err != nil {
		return RelationshipManagerBody{}, err
	}
	mine := lo.Filter(customers, func(c domain.Customer, _ int) bool { return c.RelationshipManager == identity.Name })
	return RelationshipManagerBody{
		Stats:        rmStats,
		Pipeline:     leadPipeline,
		Interactions: recentInteractions,
		Tasks:        dailyTasks,
		Customers:    f.customers(mine),
		Leads:        f.leads(lo.Filter(leads, func(l domain.Lead, _ int) bool { return l.AssignedTo == identity.Name })),
		KYCDocuments: lo.Filter(docs, func(d domain.KYCDocument, _ int) bool { return f.match(d.CustomerName, d.DocumentType) }),
	}, nil
}

func (b *Builder) supportAgent(ctx context.Context, f filter) (SupportAgentBody, error) {
	tickets, err := b.records.Tickets(ctx)
	if err != nil {
		return SupportAgentBody{}, err
	}
	customers, err := b.records.Customers(ctx)
	if err != nil {
		return SupportAgentBody{}, err
	}
	tickets = f.tickets(tickets)
	return SupportAgentBody{
		Stats:         ticketStats,
		Conversations: recentConversations,
		Tickets:       tickets,
		HighPriority: lo.Filter(tickets, func(t domain.Ticket, _ int) bool {
			return t.Priority == domain.TicketPriorityHigh
		}),
		Customers: lo.Subset(f.customers(customers), 0, 5),
	}, nil
}

func (b *Builder) customer(ctx context.Context, f filter) (CustomerBody, error) {
	txns, err := b.records.Transactions(ctx)
	if err != nil {
		return CustomerBody{}, err
	}
	return CustomerBody{
		Summary:      accountSummary,
		Accounts:     accountCards,
		Applications: applications,
		Transactions: lo.Filter(txns, func(t domain.Transaction, _ int) bool { return f.match(t.Description, t.Type) }),
		Documents:    customerDocuments,
	}, nil
}

type filter struct {
	needle string
}

func newFilter(q string) filter {
	return filter{needle: strings.ToLower(q)}
}

// match reports whether any field contains the needle; an empty needle matches all.
func (f filter) match(fields ...string) bool {
	if f.needle == "" {
		return true
	}
	return lo.SomeBy(fields, func(s string) bool {
		return strings.Contains(strings.ToLower(s), f.needle)
	})
}

func (f filter) customers(in []domain.Customer) []domain.Customer {
	return lo.Filter(in, func(c domain.Customer, _ int) bool {
		return f.match(c.Name, c.Email, c.AccountNumber)
	})
}

func (f filter) leads(in []domain.Lead) []domain.Lead {
	return lo.Filter(in, func(l domain.Lead, _ int) bool {
		return f.match(l.Name, l.Email, l.Product)
	})
}

func (f filter) tickets(in []domain.Ticket) []domain.Ticket {
	return lo.Filter(in, func(t domain.Ticket, _ int) bool {
		return f.match(t.ID, t.Subject, t.CustomerName)
	})
}
