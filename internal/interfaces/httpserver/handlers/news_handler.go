package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/news"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/requests"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/responses"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// NewsHandler exposes course news digests over HTTP.
type NewsHandler struct {
	service news.Service
	log     zerolog.Logger
}

// NewNewsHandler constructs the handler.
func NewNewsHandler(service news.Service, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		log:     log.With().Str("handler", "news").Logger(),
	}
}

// CourseNews handles POST /v1/news
// @Summary Fetch the news digest for an investment course
// @Tags News
// @Accept json
// @Produce json
// @Param request body requests.NewsRequest true "Course"
// @Success 200 {object} responses.NewsResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 404 {object} platformerrors.HTTPErrorResponse
// @Failure 502 {object} platformerrors.HTTPErrorResponse
// @Router /v1/news [post]
func (h *NewsHandler) CourseNews(c *gin.Context) {
	var req requests.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body")
		return
	}

	digest, err := h.service.CourseNews(c.Request.Context(), req.CourseID)
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.MapDigestToResponse(digest))
}
