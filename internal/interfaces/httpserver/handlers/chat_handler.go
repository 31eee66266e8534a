package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/infrastructure/metrics"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/requests"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/responses"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// ChatHandler exposes the conversational pipeline over HTTP.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Chat handles POST /v1/chat
// @Summary Run one conversational turn
// @Description Sends a user message to the conversation's persona and returns the reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.ChatRequest true "Chat turn"
// @Success 200 {object} responses.ChatResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Failure 500 {object} platformerrors.HTTPErrorResponse
// @Router /v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body")
		return
	}

	conversationID := req.ResolveConversationID()
	if conversationID == "" {
		platformerrors.WriteValidationError(c, "conversation_id is required")
		return
	}
	if req.Message == nil {
		platformerrors.WriteValidationError(c, "message is required")
		return
	}

	start := time.Now()
	result, err := h.service.Chat(c.Request.Context(), chat.ChatParams{
		ConversationID: conversationID,
		Message:        *req.Message,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	metrics.RecordModelInvocation(result.PersonaKey, result.UsedFallback, time.Since(start))
	if result.ExtractedData != nil {
		metrics.RecordIntentExtraction(string(result.ExtractedData.Type))
	}

	c.JSON(http.StatusOK, responses.MapChatResultToResponse(result))
}
