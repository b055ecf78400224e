package records

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spec-kit/bank-crm/internal/domain"
)

// Fixtures is the built-in demo data set.
type Fixtures struct {
	customers    []domain.Customer
	leads        []domain.Lead
	tickets      []domain.Ticket
	transactions []domain.Transaction
	meetings     []domain.Meeting
	reports      []domain.Report
	activityLogs []domain.ActivityLog
	kycDocuments []domain.KYCDocument
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(fmt.Sprintf("records: bad fixture date %q", s))
	}
	return t
}

func stamp(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(fmt.Sprintf("records: bad fixture timestamp %q", s))
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// NewFixtures builds a fresh copy of the demo data.
func NewFixtures() *Fixtures {
	return &Fixtures{
		customers: []domain.Customer{
			{ID: "1", Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-0123", AccountNumber: "ACC001234", Branch: "Downtown Branch", RelationshipManager: "Sarah Wilson", AccountType: "Premium Savings", Balance: 125000, Status: "Active", KYCStatus: "Approved", JoinDate: day("2023-01-15"), LastActivity: day("2024-01-20")},
			{ID: "2", Name: "Emily Johnson", Email: "emily.johnson@email.com", Phone: "+1-555-0124", AccountNumber: "ACC001235", Branch: "Downtown Branch", RelationshipManager: "Sarah Wilson", AccountType: "Business Current", Balance: 750000, Status: "Active", KYCStatus: "Pending", JoinDate: day("2023-03-22"), LastActivity: day("2024-01-19")},
			{ID: "3", Name: "Michael Brown", Email: "michael.brown@email.com", Phone: "+1-555-0125", AccountNumber: "ACC001236", Branch: "Uptown Branch", RelationshipManager: "David Miller", AccountType: "Regular Savings", Balance: 45000, Status: "Active", KYCStatus: "Approved", JoinDate: day("2023-06-10"), LastActivity: day("2024-01-18")},
		},
		leads: []domain.Lead{
			{ID: "1", Name: "Robert Davis", Email: "robert.davis@email.com", Phone: "+1-555-0126", Source: "Website", Product: "Home Loan", Status: domain.LeadStatusHot, AssignedTo: "Sarah Wilson", Value: 500000, CreatedDate: day("2024-01-15"), LastContact: day("2024-01-20")},
			{ID: "2", Name: "Lisa Wilson", Email: "lisa.wilson@email.com", Phone: "+1-555-0127", Source: "Referral", Product: "Credit Card", Status: domain.LeadStatusWarm, AssignedTo: "David Miller", Value: 15000, CreatedDate: day("2024-01-12"), LastContact: day("2024-01-19")},
			{ID: "3", Name: "Thomas Anderson", Email: "thomas.anderson@email.com", Phone: "+1-555-0128", Source: "Walk-in", Product: "Fixed Deposit", Status: domain.LeadStatusCold, AssignedTo: "Sarah Wilson", Value: 100000, CreatedDate: day("2024-01-10"), LastContact: day("2024-01-16")},
		},
		tickets: []domain.Ticket{
			{ID: "TKT001", CustomerID: "1", CustomerName: "John Smith", Subject: "Unable to access online banking", Description: "Customer cannot log into their online banking account", Priority: domain.TicketPriorityHigh, Status: domain.TicketStatusOpen, AssignedTo: "Mike Support", Category: "Technical", CreatedDate: day("2024-01-20"), SLABreachTime: stamp("2024-01-22T10:00:00"), LastUpdated: day("2024-01-20")},
			{ID: "TKT002", CustomerID: "2", CustomerName: "Emily Johnson", Subject: "Debit card blocked", Description: "Customer's debit card has been blocked due to suspicious activity", Priority: domain.TicketPriorityMedium, Status: domain.TicketStatusInProgress, AssignedTo: "Mike Support", Category: "Account", CreatedDate: day("2024-01-19"), SLABreachTime: stamp("2024-01-21T14:00:00"), LastUpdated: day("2024-01-20")},
			{ID: "TKT003", CustomerID: "3", CustomerName: "Michael Brown", Subject: "Request for account statement", Description: "Customer requesting last 6 months account statement", Priority: domain.TicketPriorityLow, Status: domain.TicketStatusCompleted, AssignedTo: "Sarah Support", Category: "Request", CreatedDate: day("2024-01-18"), SLABreachTime: stamp("2024-01-20T16:00:00"), LastUpdated: day("2024-01-19")},
		},
		transactions: []domain.Transaction{
			{ID: "TXN001", AccountNumber: "ACC001234", Date: day("2024-01-20"), Description: "Online Transfer to John Doe", Debit: 5000, Credit: 0, Balance: 125000, Type: "Transfer"},
			{ID: "TXN002", AccountNumber: "ACC001234", Date: day("2024-01-19"), Description: "Salary Credit", Debit: 0, Credit: 85000, Balance: 130000, Type: "Credit"},
			{ID: "TXN003", AccountNumber: "ACC001234", Date: day("2024-01-18"), Description: "ATM Withdrawal", Debit: 2000, Credit: 0, Balance: 45000, Type: "Withdrawal"},
		},
		meetings: []domain.Meeting{
			{ID: "1", CustomerName: "John Smith", CustomerID: "1", Date: day("2024-01-22"), Time: "10:00 AM", Purpose: "Home Loan Discussion", Status: "Scheduled", Location: "Downtown Branch"},
			{ID: "2", CustomerName: "Emily Johnson", CustomerID: "2", Date: day("2024-01-23"), Time: "2:00 PM", Purpose: "Investment Planning", Status: "Scheduled", Location: "Online"},
		},
		reports: []domain.Report{
			{ID: "1", Name: "Customer Analytics Report", Type: "Customer", GeneratedDate: day("2024-01-20"), Format: "PDF", Size: "2.5 MB"},
			{ID: "2", Name: "Lead Conversion Report", Type: "Lead", GeneratedDate: day("2024-01-19"), Format: "Excel", Size: "1.8 MB"},
			{ID: "3", Name: "Support Tickets Summary", Type: "Ticket", GeneratedDate: day("2024-01-18"), Format: "PDF", Size: "3.2 MB"},
		},
		activityLogs: []domain.ActivityLog{
			{ID: "1", User: "Sarah Wilson", Action: "Created new customer account", Details: "Account ACC001237 created for Jane Doe", Timestamp: stamp("2024-01-20T09:30:00"), Type: domain.ActivityCreate},
			{ID: "2", User: "Mike Support", Action: "Resolved support ticket", Details: "Ticket TKT003 marked as completed", Timestamp: stamp("2024-01-20T08:45:00"), Type: domain.ActivityUpdate},
			{ID: "3", User: "John Manager", Action: "Approved loan application", Details: "Home loan for $500,000 approved", Timestamp: stamp("2024-01-19T16:20:00"), Type: domain.ActivityApprove},
		},
		kycDocuments: []domain.KYCDocument{
			{ID: "1", CustomerID: "1", CustomerName: "John Smith", DocumentType: "Passport", Status: "Approved", UploadDate: day("2024-01-15"), ReviewDate: dayPtr("2024-01-16")},
			{ID: "2", CustomerID: "2", CustomerName: "Emily Johnson", DocumentType: "Driver License", Status: "Pending", UploadDate: day("2024-01-18")},
			{ID: "3", CustomerID: "1", CustomerName: "John Smith", DocumentType: "Utility Bill", Status: "Approved", UploadDate: day("2024-01-15"), ReviewDate: dayPtr("2024-01-16")},
		},
	}
}

func (f *Fixtures) Customers(context.Context) ([]domain.Customer, error) {
	return slices.Clone(f.customers), nil
}

func (f *Fixtures) Leads(context.Context) ([]domain.Lead, error) {
	return slices.Clone(f.leads), nil
}

func (f *Fixtures) Tickets(context.Context) ([]domain.Ticket, error) {
	return slices.Clone(f.tickets), nil
}

func (f *Fixtures) Transactions(context.Context) ([]domain.Transaction, error) {
	return slices.Clone(f.transactions), nil
}

func (f *Fixtures) Meetings(context.Context) ([]domain.Meeting, error) {
	return slices.Clone(f.meetings), nil
}

func (f *Fixtures) Reports(context.Context) ([]domain.Report, error) {
	return slices.Clone(f.reports), nil
}

func (f *Fixtures) ActivityLogs(context.Context) ([]domain.ActivityLog, error) {
	return slices.Clone(f.activityLogs), nil
}

func (f *Fixtures) KYCDocuments(context.Context) ([]domain.KYCDocument, error) {
	return slices.Clone(f.kycDocuments), nil
}

func (f *Fixtures) CustomerByID(_ context.Context, id string) (*domain.Customer, error) {
	return findByID(f.customers, id, func(c domain.Customer) string { return c.ID })
}

func (f *Fixtures) LeadByID(_ context.Context, id string) (*domain.Lead, error) {
	return findByID(f.leads, id, func(l domain.Lead) string { return l.ID })
}

func (f *Fixtures) TicketByID(_ context.Context, id string) (*domain.Ticket, error) {
	return findByID(f.tickets, id, func(t domain.Ticket) string { return t.ID })
}

func findByID[T any](items []T, id string, key func(T) string) (*T, error) {
	for _, item := range items {
		if key(item) == id {
			found := item
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
}
