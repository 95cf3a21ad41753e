package consultations

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "ai"
)

type Message struct {
	Sender  Sender
	Content string
	SentAt  time.Time
}

// Consultation is one chat thread between a user and the assistant.
type Consultation struct {
	ID     string
	UserID string

	// Title is derived from the opening message.
	Title    string
	Language string

	Messages []Message

	StartedAt time.Time
	UpdatedAt time.Time
}
