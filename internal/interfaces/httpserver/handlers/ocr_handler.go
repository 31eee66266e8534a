package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"moneystocks/services/chat-api/internal/domain/ocr"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/requests"
	"moneystocks/services/chat-api/internal/interfaces/httpserver/responses"
	"moneystocks/services/chat-api/internal/utils/platformerrors"
)

// OCRHandler exposes receipt extraction over HTTP.
type OCRHandler struct {
	service ocr.Service
	log     zerolog.Logger
}

// NewOCRHandler constructs the handler.
func NewOCRHandler(service ocr.Service, log zerolog.Logger) *OCRHandler {
	return &OCRHandler{
		service: service,
		log:     log.With().Str("handler", "ocr").Logger(),
	}
}

// ProcessReceipt handles POST /v1/ocr/receipt
// @Summary Extract structured data from a receipt photo
// @Tags OCR
// @Accept json
// @Produce json
// @Param request body requests.OCRRequest true "Receipt"
// @Success 200 {object} responses.OCRResponse
// @Failure 400 {object} platformerrors.HTTPErrorResponse
// @Failure 502 {object} platformerrors.HTTPErrorResponse
// @Router /v1/ocr/receipt [post]
func (h *OCRHandler) ProcessReceipt(c *gin.Context) {
	var req requests.OCRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body")
		return
	}

	receipt, err := h.service.ProcessReceipt(c.Request.Context(), ocr.ProcessParams{
		ImageURL: req.ImageURL,
		UserID:   req.UserID,
	})
	if err != nil {
		platformerrors.WriteError(c, err, h.log)
		return
	}

	c.JSON(http.StatusOK, responses.MapReceiptToResponse(receipt))
}
