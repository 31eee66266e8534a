package requests

import "strings"

// ChatRequest represents one conversational turn from the mobile client.
// Message is a pointer so an absent field can be told apart from an empty
// string; empty messages are valid for image-only turns.
type ChatRequest struct {
	Message  *string `json:"message"`
	ImageURL *string `json:"image_url,omitempty"`

	// Older client builds sent the conversation id in camelCase. Both
	// spellings are accepted; snake_case wins when both are present.
	ConversationID      string `json:"conversation_id"`
	ConversationIDCamel string `json:"conversationId"`
}

// ResolveConversationID applies the spelling precedence.
func (r *ChatRequest) ResolveConversationID() string {
	if id := strings.TrimSpace(r.ConversationID); id != "" {
		return id
	}
	return strings.TrimSpace(r.ConversationIDCamel)
}

// CreateConversationRequest bootstraps a new chat thread.
type CreateConversationRequest struct {
	UserID  string  `json:"user_id"`
	Persona string  `json:"persona,omitempty"`
	Title   *string `json:"title,omitempty"`
}
