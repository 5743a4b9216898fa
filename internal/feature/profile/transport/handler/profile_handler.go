// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/profile/transport/http/dto"
	"onboarding_backend/internal/feature/profile/usecase"
	"onboarding_backend/internal/platform/http/respond"
)

// ProfileUsecase はプロフィール更新のユースケースを定義します。
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID string, patch usecase.ProfilePatch) (*entity.Profile, error)
}

// ProfileHandler はプロフィールのHTTPリクエストを処理します。
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Update はPUT /profile/:user_id を処理します。
// - ボディ不正・制約違反は400
// - ユーザーが存在しない場合は404
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	userID := c.Param("user_id")
	if _, err := h.profiles.UpdateProfile(c.Request.Context(), userID, req.Patch()); err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("profile updated", "user_id", userID, "remote_addr", c.ClientIP())
	respond.Message(c, http.StatusOK, "Profile updated successfully")
}
