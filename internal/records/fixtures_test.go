package records

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/bank-crm/internal/domain"
)

func TestNewProvider_FallsBackToFixtures(t *testing.T) {
	_, ok := NewProvider(nil).(*Fixtures)
	require.True(t, ok)
}

func TestFixtures_Collections(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := NewFixtures()

	customers, err := f.Customers(ctx)
	req.NoError(err)
	req.Len(customers, 3)
	req.Equal("John Smith", customers[0].Name)
	req.EqualValues(125000, customers[0].Balance)

	leads, _ := f.Leads(ctx)
	req.Len(leads, 3)
	req.Equal(domain.LeadStatusHot, leads[0].Status)

	tickets, _ := f.Tickets(ctx)
	req.Len(tickets, 3)
	req.Equal(domain.TicketPriorityHigh, tickets[0].Priority)
	req.Equal(10, tickets[0].SLABreachTime.Hour())

	txns, _ := f.Transactions(ctx)
	req.Len(txns, 3)
	meetings, _ := f.Meetings(ctx)
	req.Len(meetings, 2)
	reports, _ := f.Reports(ctx)
	req.Len(reports, 3)
	logs, _ := f.ActivityLogs(ctx)
	req.Len(logs, 3)

	docs, _ := f.KYCDocuments(ctx)
	req.Len(docs, 3)
	req.NotNil(docs[0].ReviewDate)
	req.Nil(docs[1].ReviewDate)
}

func TestFixtures_ReturnsCopies(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := NewFixtures()

	customers, _ := f.Customers(ctx)
	customers[0].Name = "changed"

	again, _ := f.Customers(ctx)
	req.Equal("John Smith", again[0].Name)
}

func TestFixtures_ByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := NewFixtures()

	ticket, err := f.TicketByID(ctx, "TKT002")
	req.NoError(err)
	req.Equal("Debit card blocked", ticket.Subject)

	lead, err := f.LeadByID(ctx, "3")
	req.NoError(err)
	req.Equal("Thomas Anderson", lead.Name)

	customer, err := f.CustomerByID(ctx, "2")
	req.NoError(err)
	req.Equal("Emily Johnson", customer.Name)

	_, err = f.CustomerByID(ctx, "")
	req.ErrorIs(err, ErrNotFound)
	_, err = f.TicketByID(ctx, "TKT999")
	req.ErrorIs(err, ErrNotFound)
}
