package domain

import "time"

// ThreadSender indicates who authored a ticket thread entry.
type ThreadSender string

const (
	ThreadSenderCustomer ThreadSender = "Customer"
	ThreadSenderAgent    ThreadSender = "Agent"
	ThreadSenderInternal ThreadSender = "Internal"
)

// TicketThreadEntry captures one message in a ticket conversation.
type TicketThreadEntry struct {
	ID          int          `json:"id"`
	Sender      ThreadSender `json:"sender"`
	Name        string       `json:"name"`
	Avatar      string       `json:"avatar"`
	Message     string       `json:"message"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []string     `json:"attachments"`
}

// Internal reports whether the entry is an agent-only note.
func (e TicketThreadEntry) Internal() bool {
	return e.Sender == ThreadSenderInternal
}
