package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/chat"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/requests"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/responses"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// ConversationHandler exposes thread bootstrap and inspection endpoints.
type ConversationHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewConversationHandler constructs the handler.
func NewConversationHandler(service chat.Service, log zerolog.Logger) *ConversationHandler {
	return &ConversationHandler{
		service: service,
		log:     log.With().Str("handler", "conversation").Logger(),
	}
}

// Create handles POST /v1/conversations
// @Summary Create a conversation
// @Tags Conversations
// @Accept json
// @Produce json
// @Param request body requests.CreateConversationRequest true "Conversation"
// @Success 201 {object} responses.ConversationResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Router /v1/conversations [post]
func (h *ConversationHandler) Create(c *gin.Context) {
	var req requests.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body")
		return
	}

	conv, err := h.service.CreateConversation(c.Request.Context(), chat.CreateConversationParams{
		UserID:  req.UserID,
		Persona: req.Persona,
		Title:   req.Title,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusCreated, responses.MapConversationToResponse(conv))
}

// ListMessages handles GET /v1/conversations/:conversation_id/messages
// @Summary List conversation messages
// @Tags Conversations
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} responses.MessageListResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Router /v1/conversations/{conversation_id}/messages [get]
func (h *ConversationHandler) ListMessages(c *gin.Context) {
	messages, err := h.service.ListMessages(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.MapMessagesToResponse(messages))
}
