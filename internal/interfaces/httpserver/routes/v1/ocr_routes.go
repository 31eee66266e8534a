package v1

import (
	"github.com/gin-gonic/gin"

	"moneystocks/services/chat-api/internal/interfaces/httpserver/handlers"
)

func registerOCRRoutes(router gin.IRoutes, handler *handlers.OCRHandler) {
	router.POST("/ocr/receipt", handler.ProcessReceipt)
}
