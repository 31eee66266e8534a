package handlers

import (
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/domain/ocr"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat         *ChatHandler
	Conversation *ConversationHandler
	OCR          *OCRHandler
	News         *NewsHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	chatService chat.Service,
	ocrService ocr.Service,
	newsService news.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:         NewChatHandler(chatService, log),
		Conversation: NewConversationHandler(chatService, log),
		OCR:          NewOCRHandler(ocrService, log),
		News:         NewNewsHandler(newsService, log),
	}
}
