// Package handler はonboardingフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/onboarding/transport/http/dto"
	"onboarding_backend/internal/feature/onboarding/usecase"
	"onboarding_backend/internal/platform/http/respond"
)

const msgConfigUpdated = "Configuration updated successfully"

// OnboardingUsecase はオンボーディング設定のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type OnboardingUsecase interface {
	List(ctx context.Context) ([]entity.OnboardingConfig, error)
	Update(ctx context.Context, component string, page int) error
	BulkUpdate(ctx context.Context, updates []usecase.PageUpdate) error
}

// OnboardingHandler はオンボーディング設定のHTTPリクエストを処理します。
type OnboardingHandler struct {
	onboarding OnboardingUsecase
}

// NewOnboardingHandler はOnboardingHandlerの新しいインスタンスを生成します。
func NewOnboardingHandler(onboarding OnboardingUsecase) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding}
}

// List はGET /admin/onboarding/config を処理します。
func (h *OnboardingHandler) List(c *gin.Context) {
	configs, err := h.onboarding.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewConfigItems(configs))
}

// Update はPUT /admin/onboarding/config/:component を処理します。
// - ボディ不正時は400
// - 未知のコンポーネントは404、ページ範囲外は400
func (h *OnboardingHandler) Update(c *gin.Context) {
	var req dto.UpdateConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	component := c.Param("component")
	if err := h.onboarding.Update(c.Request.Context(), component, *req.PageNumber); err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("onboarding config updated", "component", component, "page_number", *req.PageNumber, "remote_addr", c.ClientIP())
	respond.Message(c, http.StatusOK, msgConfigUpdated)
}

// BulkUpdate はPUT /admin/onboarding/config を処理します。
// 1件でも不正な要素があれば何も更新しません。
func (h *OnboardingHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}

	updates := make([]usecase.PageUpdate, 0, len(req.Updates))
	for _, item := range req.Updates {
		updates = append(updates, usecase.PageUpdate{
			Component:  entity.Component(item.Component),
			PageNumber: *item.PageNumber,
		})
	}
	if err := h.onboarding.BulkUpdate(c.Request.Context(), updates); err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("onboarding config bulk updated", "count", len(updates), "remote_addr", c.ClientIP())
	respond.Message(c, http.StatusOK, msgConfigUpdated)
}
