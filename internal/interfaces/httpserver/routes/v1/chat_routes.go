package v1

import (
	"github.com/gin-gonic/gin"

	"moneystocks/services/chat-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, chat *handlers.ChatHandler, conversation *handlers.ConversationHandler) {
	router.POST("/chat", chat.Chat)
	router.POST("/conversations", conversation.Create)
	router.GET("/conversations/:conversation_id/messages", conversation.ListMessages)
}
