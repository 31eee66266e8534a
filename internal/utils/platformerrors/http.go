package platformerrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HTTPErrorResponse is the error body returned to the mobile client.
type HTTPErrorResponse struct {
	Error string `json:"error"`
}

// WriteError converts an error into an HTTP response. PlatformErrors map to
// their taxonomy status; anything else is a 500 with a best-effort message.
func WriteError(c *gin.Context, err error, log zerolog.Logger) {
	if err == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPErrorResponse{Error: "unknown error"})
		return
	}

	var platformErr *PlatformError
	if errors.As(err, &platformErr) {
		LogError(log, platformErr)
		c.AbortWithStatusJSON(ErrorTypeToHTTPStatus(platformErr.Type), HTTPErrorResponse{
			Error: platformErr.Message,
		})
		return
	}

	log.Error().Err(err).Msg("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, HTTPErrorResponse{Error: err.Error()})
}

// WriteValidationError writes a 400 Bad Request response.
func WriteValidationError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPErrorResponse{Error: message})
}
