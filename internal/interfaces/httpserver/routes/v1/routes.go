package v1

import (
	"github.com/gin-gonic/gin"

	"moneystocks/services/chat-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerChatRoutes(group, r.handlers.Chat, r.handlers.Conversation)

	if r.handlers.OCR != nil {
		registerOCRRoutes(group, r.handlers.OCR)
	}
	if r.handlers.News != nil {
		registerNewsRoutes(group, r.handlers.News)
	}
}
