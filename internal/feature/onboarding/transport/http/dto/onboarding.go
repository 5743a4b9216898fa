// Package dto はonboardingフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "onboarding_backend/internal/domain/entity"

// ConfigItem は1コンポーネントの配置を表します。
type ConfigItem struct {
	Component  string `json:"component"`
	PageNumber int    `json:"page_number"`
}

// ページ番号はポインタで受け、0 も範囲チェックはユースケースに任せる。
// そうしないと未知のコンポーネントでも400になってしまう

// UpdateConfigReq はPUT /admin/onboarding/config/:component のリクエストボディです。
type UpdateConfigReq struct {
	PageNumber *int `json:"page_number" binding:"required"`
}

// ConfigUpdateItem はBulkUpdateReqの1要素です。
type ConfigUpdateItem struct {
	Component  string `json:"component" binding:"required"`
	PageNumber *int   `json:"page_number" binding:"required"`
}

// BulkUpdateReq はPUT /admin/onboarding/config のリクエストボディです。
type BulkUpdateReq struct {
	Updates []ConfigUpdateItem `json:"updates" binding:"required,min=1,dive"`
}

// NewConfigItems はエンティティをレスポンス用の配列に変換します。
func NewConfigItems(configs []entity.OnboardingConfig) []ConfigItem {
	items := make([]ConfigItem, 0, len(configs))
	for _, c := range configs {
		items = append(items, ConfigItem{Component: string(c.Component), PageNumber: c.PageNumber})
	}
	return items
}
