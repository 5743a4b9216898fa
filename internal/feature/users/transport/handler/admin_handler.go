package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/feature/users/transport/http/dto"
	"onboarding_backend/internal/platform/http/respond"
	jwtmw "onboarding_backend/internal/platform/jwt"
)

// AdminHandler serves the staff-only user administration and the admin site settings.
type AdminHandler struct {
	users UsersUsecase
	site  dto.SiteRes
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users UsersUsecase, site dto.SiteRes) *AdminHandler {
	return &AdminHandler{users: users, site: site}
}

// Site handles GET /admin.
func (h *AdminHandler) Site(c *gin.Context) {
	c.JSON(http.StatusOK, h.site)
}

// ListUsers handles GET /admin/users?q=.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.AdminList(c.Request.Context(), c.Query("q"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminUsers(users))
}

// DeleteUser handles DELETE /admin/users/:user_id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.users.Delete(c.Request.Context(), userID); err != nil {
		respond.Error(c, err)
		return
	}
	actor, _ := jwtmw.UserIDFrom(c)
	slog.Info("user deleted", "user_id", userID, "by", actor, "remote_addr", c.ClientIP())
	respond.Message(c, http.StatusOK, "User deleted successfully")
}

// BackfillProfiles handles POST /admin/maintenance/backfill-profiles.
func (h *AdminHandler) BackfillProfiles(c *gin.Context) {
	created, err := h.users.BackfillProfiles(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("profiles backfilled", "created", created, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.BackfillRes{Created: created})
}
