package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusCompleted  TicketStatus = "Completed"
)

// TicketPriority enumerates SLA urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
)

// Ticket is a customer support request.
type Ticket struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Priority      TicketPriority `json:"priority"`
	Status        TicketStatus   `json:"status"`
	AssignedTo    string         `json:"assigned_to"`
	Category      string         `json:"category"`
	CreatedDate   time.Time      `json:"created_date"`
	SLABreachTime time.Time      `json:"sla_breach_time"`
	LastUpdated   time.Time      `json:"last_updated"`
}
