// Package respond writes the JSON envelopes shared by every handler.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/shared/apperr"
)

// MessageResponse is the {"message": ...} body used for results and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// Message writes status with a message body.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}

// BadRequest answers a request body that failed binding.
func BadRequest(c *gin.Context, err error) {
	slog.Warn("request validation failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	Message(c, http.StatusBadRequest, "invalid request")
}

// Error maps err to its status code. Internal errors are logged and their
// text is replaced with a generic message.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	} else {
		slog.Warn("request rejected", "kind", apperr.KindOf(err).String(), "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
	}
	Message(c, status, apperr.MessageOf(err))
}
