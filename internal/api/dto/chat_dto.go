package dto

import "github.com/spec-kit/bank-crm/internal/domain"

// ChatMessageRequest payload for POST /chat/messages.
type ChatMessageRequest struct {
	Text string `json:"text" validate:"max=2000"`
}

// ChatResponse is the widget as seen by the client.
type ChatResponse struct {
	Open     bool                 `json:"open"`
	Pending  int                  `json:"pending"`
	Messages []domain.ChatMessage `json:"messages"`
}

// ChatSendResponse adds the accepted user message, if any.
type ChatSendResponse struct {
	Sent *domain.ChatMessage `json:"sent,omitempty"`
	ChatResponse
}
