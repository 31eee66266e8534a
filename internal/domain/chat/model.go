package chat

import (
	"time"

	"moneystocks/services/chat-api/internal/domain/intent"
)

// Role indicates who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation is a chat thread between one user and one persona.
type Conversation struct {
	ID             uint
	PublicID       string
	UserID         string
	Title          *string
	Persona        string
	ContextSummary *string
	IsArchived     bool
	LastMessageAt  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Message is a single turn inside a conversation. Messages are append-only;
// nothing updates them after insert.
type Message struct {
	ID             uint
	PublicID       string
	ConversationID uint
	Role           Role
	Content        string
	Intent         *string
	ExtractedData  *intent.Transaction
	ImageURL       *string
	Persona        *string
	CreatedAt      time.Time
}
