package chat

import "context"

// ConversationRepository exposes lookups and writes for conversation metadata.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByPublicID(ctx context.Context, publicID string) (*Conversation, error)
}

// MessageRepository persists individual chat messages.
type MessageRepository interface {
	// ListRecent returns at most limit of the newest messages for the
	// conversation, reordered oldest-first so they can be replayed as prompt
	// history. A limit of zero or less returns the whole thread.
	ListRecent(ctx context.Context, conversationID uint, limit int) ([]Message, error)

	// SaveTurn writes the user message, the assistant message, and the
	// conversation's last-activity bump in a single transaction, so a crash
	// can never leave a user message without its paired reply.
	SaveTurn(ctx context.Context, userMsg *Message, assistantMsg *Message) error
}
