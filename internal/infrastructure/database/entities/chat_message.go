package entities

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/intent"
)

// ChatMessage represents the database schema for chat messages. Rows are
// append-only.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	PublicID       string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	ConversationID uint           `gorm:"index:idx_chat_message_conversation;not null"`
	Role           string         `gorm:"type:varchar(20);not null"`
	Content        string         `gorm:"type:text;not null"`
	Intent         *string        `gorm:"type:varchar(50)"`
	ExtractedData  datatypes.JSON `gorm:"type:jsonb"`
	ImageURL       *string        `gorm:"type:text"`
	Persona        *string        `gorm:"type:varchar(50)"`
}

// TableName specifies the table name for ChatMessage.
func (ChatMessage) TableName() string {
	return "chat_messages"
}

// EtoD converts database entity to domain model
func (m *ChatMessage) EtoD() (*chat.Message, error) {
	var extracted *intent.Transaction
	if len(m.ExtractedData) > 0 && string(m.ExtractedData) != "null" {
		extracted = &intent.Transaction{}
		if err := json.Unmarshal(m.ExtractedData, extracted); err != nil {
			return nil, fmt.Errorf("decode extracted data for message %s: %w", m.PublicID, err)
		}
	}

	return &chat.Message{
		ID:             m.ID,
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		Role:           chat.Role(m.Role),
		Content:        m.Content,
		Intent:         m.Intent,
		ExtractedData:  extracted,
		ImageURL:       m.ImageURL,
		Persona:        m.Persona,
		CreatedAt:      m.CreatedAt,
	}, nil
}

// NewSchemaChatMessage creates a database entity from domain model
func NewSchemaChatMessage(m *chat.Message) (*ChatMessage, error) {
	var extracted datatypes.JSON
	if m.ExtractedData != nil {
		bytes, err := json.Marshal(m.ExtractedData)
		if err != nil {
			return nil, fmt.Errorf("encode extracted data: %w", err)
		}
		extracted = datatypes.JSON(bytes)
	}

	return &ChatMessage{
		ID:             m.ID,
		PublicID:       m.PublicID,
		ConversationID: m.ConversationID,
		Role:           string(m.Role),
		Content:        m.Content,
		Intent:         m.Intent,
		ExtractedData:  extracted,
		ImageURL:       m.ImageURL,
		Persona:        m.Persona,
		CreatedAt:      m.CreatedAt,
	}, nil
}
