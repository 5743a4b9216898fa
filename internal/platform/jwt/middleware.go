package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/shared/apperr"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// ErrMissingToken is returned when the Authorization header is not a bearer token.
var ErrMissingToken = apperr.New(apperr.KindUnauthorized, "No valid token provided")

// Validator validates a token and returns the user id it carries.
type Validator interface {
	Validate(token string) (string, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// AuthRequired returns a Gin middleware that rejects requests without a valid
// bearer token and stores the user id under ContextUserID.
func AuthRequired(v Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperr.MessageOf(err)})
			return
		}

		userID, err := v.Validate(token)
		if err != nil {
			slog.Warn("token rejected", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperr.MessageOf(err)})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserIDFrom returns the user id set by AuthRequired.
func UserIDFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
