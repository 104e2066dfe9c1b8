// Package models contains domain models for yojanasathi.
package models

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message represents a single chat message within a session.
type Message struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	CreatedAt int64  `json:"created_at_epoch"`
}

// ChatEvent is the payload pushed to SSE subscribers when the assistant
// reply for a turn becomes available.
type ChatEvent struct {
	Type      string  `json:"type"`
	SessionID string  `json:"session_id"`
	Message   Message `json:"message"`
}
