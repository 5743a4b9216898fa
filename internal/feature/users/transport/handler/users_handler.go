// Package handler はusersフィーチャーのHTTPハンドラーと管理者向けミドルウェアを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/users/transport/http/dto"
	"onboarding_backend/internal/platform/http/respond"
)

// UsersUsecase はユーザー一覧と管理操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UsersUsecase interface {
	List(ctx context.Context) ([]entity.UserSummary, error)
	BackfillProfiles(ctx context.Context) (int, error)
	AdminList(ctx context.Context, search string) ([]entity.User, error)
	Delete(ctx context.Context, userID string) error
}

// UsersHandler はユーザー関連のHTTPリクエストを処理します。
type UsersHandler struct {
	users UsersUsecase
}

// NewUsersHandler はUsersHandlerの新しいインスタンスを生成します。
func NewUsersHandler(users UsersUsecase) *UsersHandler {
	return &UsersHandler{users: users}
}

// List はGET /users を処理します。プロフィールの無いユーザーはnullで返します。
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRows(users))
}
