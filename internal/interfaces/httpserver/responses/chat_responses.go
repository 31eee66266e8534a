package responses

import (
	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/intent"
)

// ChatResponse is the payload of a successful conversational turn.
type ChatResponse struct {
	Message       string              `json:"message"`
	Persona       string              `json:"persona"`
	Intent        *string             `json:"intent"`
	ExtractedData *intent.Transaction `json:"extracted_data"`
}

// MapChatResultToResponse converts the domain result.
func MapChatResultToResponse(result *chat.ChatResult) ChatResponse {
	return ChatResponse{
		Message:       result.Message,
		Persona:       result.Persona,
		Intent:        result.Intent,
		ExtractedData: result.ExtractedData,
	}
}

// ConversationResponse describes a chat thread.
type ConversationResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Title     *string `json:"title"`
	Persona   string  `json:"persona"`
	CreatedAt string  `json:"created_at"`
}

// MapConversationToResponse converts the domain conversation.
func MapConversationToResponse(conv *chat.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conv.PublicID,
		UserID:    conv.UserID,
		Title:     conv.Title,
		Persona:   conv.Persona,
		CreatedAt: conv.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// MessageResponse is one message in a thread listing.
type MessageResponse struct {
	ID            string              `json:"id"`
	Role          string              `json:"role"`
	Content       string              `json:"content"`
	Intent        *string             `json:"intent,omitempty"`
	ExtractedData *intent.Transaction `json:"extracted_data,omitempty"`
	ImageURL      *string             `json:"image_url,omitempty"`
	Persona       *string             `json:"persona,omitempty"`
	CreatedAt     string              `json:"created_at"`
}

// MessageListResponse wraps a thread listing.
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// MapMessagesToResponse converts a message list, preserving order.
func MapMessagesToResponse(messages []chat.Message) MessageListResponse {
	out := make([]MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = MessageResponse{
			ID:            m.PublicID,
			Role:          string(m.Role),
			Content:       m.Content,
			Intent:        m.Intent,
			ExtractedData: m.ExtractedData,
			ImageURL:      m.ImageURL,
			Persona:       m.Persona,
			CreatedAt:     m.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return MessageListResponse{Messages: out}
}
