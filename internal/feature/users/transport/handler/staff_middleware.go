package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/users/usecase"
	jwtmw "onboarding_backend/internal/platform/jwt"
	"onboarding_backend/internal/shared/apperr"
)

// StaffChecker reports whether a user may use the admin endpoints.
type StaffChecker interface {
	IsStaff(ctx context.Context, userID string) (bool, error)
}

// RequireStaff returns a Gin middleware that only lets staff users through.
// It must run after jwtmw.AuthRequired.
func RequireStaff(checker StaffChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := jwtmw.UserIDFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": apperr.MessageOf(jwtmw.ErrMissingToken)})
			return
		}

		staff, err := checker.IsStaff(c.Request.Context(), userID)
		if err != nil {
			slog.Error("staff check failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": apperr.MessageOf(err)})
			return
		}
		if !staff {
			slog.Warn("non-staff access to admin endpoint", "user_id", userID, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": apperr.MessageOf(usecase.ErrStaffOnly)})
			return
		}
		c.Next()
	}
}
