package entities

import (
	"time"

	"moneystocks/services/chat-api/internal/domain/chat"
)

// Conversation represents the database schema for chat threads
type Conversation struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	PublicID       string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	UserID         string     `gorm:"type:varchar(64);index:idx_conversation_user;not null"`
	Title          *string    `gorm:"type:varchar(256)"`
	Persona        string     `gorm:"type:varchar(50);not null;default:'wise_mentor'"`
	ContextSummary *string    `gorm:"type:text"`
	IsArchived     bool       `gorm:"not null;default:false"`
	LastMessageAt  *time.Time `gorm:"index"`

	Messages []ChatMessage `gorm:"foreignKey:ConversationID"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// EtoD converts database entity to domain model
func (c *Conversation) EtoD() *chat.Conversation {
	return &chat.Conversation{
		ID:             c.ID,
		PublicID:       c.PublicID,
		UserID:         c.UserID,
		Title:          c.Title,
		Persona:        c.Persona,
		ContextSummary: c.ContextSummary,
		IsArchived:     c.IsArchived,
		LastMessageAt:  c.LastMessageAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// NewSchemaConversation creates a database entity from domain model
func NewSchemaConversation(c *chat.Conversation) *Conversation {
	return &Conversation{
		ID:             c.ID,
		PublicID:       c.PublicID,
		UserID:         c.UserID,
		Title:          c.Title,
		Persona:        c.Persona,
		ContextSummary: c.ContextSummary,
		IsArchived:     c.IsArchived,
		LastMessageAt:  c.LastMessageAt,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
