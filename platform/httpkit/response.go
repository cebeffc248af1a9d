// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"gig_venues_backend/platform/apperr"
	"gig_venues_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error response format. Only the public
// message is serialized; internal diagnostics stay in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// HandleError is the single boundary translation from domain errors to HTTP
// responses. Typed *apperr.Error values map to their status code and public
// message; anything else becomes a 500 with the generic public message.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, log *logger.Logger, err error) bool {
	if err == nil {
		return false
	}

	status := http.StatusInternalServerError
	public := apperr.FallbackPublicMessage

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
		public = appErr.PublicMessage()
	}

	if log != nil {
		log.HTTPError(c.Request.Method, c.Request.URL.Path, status, err, c.ClientIP())
	}

	c.JSON(status, ErrorResponse{Error: public})
	return true
}
