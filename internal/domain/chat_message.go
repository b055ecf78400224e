package domain

import "time"

// ChatSender indicates who authored a chatbot transcript entry.
type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderBot  ChatSender = "bot"
)

// ChatMessage is one entry of the assistant transcript.
type ChatMessage struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Sender    ChatSender `json:"sender"`
	Timestamp time.Time  `json:"timestamp"`
}
