package events

import (
	"context"
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn        EventType = "user_logged_in"
	EventUserLoggedOut       EventType = "user_logged_out"
	EventLeadAssigned        EventType = "lead_assigned"
	EventLeadConverted       EventType = "lead_converted"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketReplied       EventType = "ticket_replied"
	EventTicketNoteAdded     EventType = "ticket_note_added"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketClosed        EventType = "ticket_closed"
	EventUserAdded           EventType = "user_added"
)

// EventTypes lists every type the action log subscribes to.
var EventTypes = []EventType{
	EventUserLoggedIn,
	EventUserLoggedOut,
	EventLeadAssigned,
	EventLeadConverted,
	EventTicketCreated,
	EventTicketReplied,
	EventTicketNoteAdded,
	EventTicketStatusChanged,
	EventTicketClosed,
	EventUserAdded,
}

// Actor encapsulates actor metadata for an event.
type Actor struct {
	SessionID  string `json:"session_id"`
	IdentityID string `json:"identity_id,omitempty"`
	Role       string `json:"role,omitempty"`
}

type actorKey struct{}

// WithActor attaches the acting session to ctx.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Subject   string      `json:"subject,omitempty"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SessionPayload payload.
type SessionPayload struct {
	Role  string `json:"role"`
	Email string `json:"email"`
}

// LeadAssignedPayload payload.
type LeadAssignedPayload struct {
	LeadID                string `json:"lead_id"`
	LeadName              string `json:"lead_name"`
	RelationshipManagerID string `json:"relationship_manager_id"`
	Priority              string `json:"priority"`
	FollowUp              string `json:"follow_up"`
	Notes                 string `json:"notes"`
}

// LeadConvertedPayload payload.
type LeadConvertedPayload struct {
	LeadID  string `json:"lead_id"`
	Product string `json:"product"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Subject      string `json:"subject"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Description  string `json:"description"`
	AssignTo     string `json:"assign_to"`
}

// TicketRepliedPayload payload.
type TicketRepliedPayload struct {
	TicketID string `json:"ticket_id"`
	Message  string `json:"message"`
}

// TicketNoteAddedPayload payload.
type TicketNoteAddedPayload struct {
	TicketID string `json:"ticket_id"`
	Note     string `json:"note"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	TicketID  string `json:"ticket_id"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	TicketID   string `json:"ticket_id"`
	Status     string `json:"status"`
	Resolution string `json:"resolution,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// UserAddedPayload payload.
type UserAddedPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Branch    string `json:"branch"`
}
