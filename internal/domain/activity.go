package domain

import "time"

// TicketActivity is an immutable audit trail entry shown with a ticket.
type TicketActivity struct {
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityType classifies system-wide activity log entries.
type ActivityType string

const (
	ActivityCreate  ActivityType = "Create"
	ActivityUpdate  ActivityType = "Update"
	ActivityApprove ActivityType = "Approve"
)

// ActivityLog records an action performed by a staff member.
type ActivityLog struct {
	ID        string       `json:"id"`
	User      string       `json:"user"`
	Action    string       `json:"action"`
	Details   string       `json:"details"`
	Timestamp time.Time    `json:"timestamp"`
	Type      ActivityType `json:"type"`
}
