// Package dto はprofileフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"onboarding_backend/internal/feature/profile/usecase"
)

// UpdateProfileReq はPUT /profile/:user_id のリクエストボディです。
// 省略したフィールドは変更せず、nullは値を消去します。
type UpdateProfileReq struct {
	AboutMe       nullable.Nullable[string]             `json:"about_me"`
	StreetAddress nullable.Nullable[string]             `json:"street_address"`
	City          nullable.Nullable[string]             `json:"city"`
	State         nullable.Nullable[string]             `json:"state"`
	ZipCode       nullable.Nullable[string]             `json:"zip_code"`
	Birthdate     nullable.Nullable[openapi_types.Date] `json:"birthdate"`
}

// Patch はリクエストをユースケースの入力に変換します。
func (r UpdateProfileReq) Patch() usecase.ProfilePatch {
	patch := usecase.ProfilePatch{
		AboutMe:       r.AboutMe,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
	}
	switch {
	case r.Birthdate.IsNull():
		patch.Birthdate = nullable.NewNullNullable[time.Time]()
	case r.Birthdate.IsSpecified():
		patch.Birthdate = nullable.NewNullableWithValue(r.Birthdate.MustGet().Time)
	}
	return patch
}
