package v1

import (
	"github.com/gin-gonic/gin"

	"moneystocks/services/chat-api/internal/interfaces/httpserver/handlers"
)

func registerNewsRoutes(router gin.IRoutes, handler *handlers.NewsHandler) {
	router.POST("/news", handler.CourseNews)
}
