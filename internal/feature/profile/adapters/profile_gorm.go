// Package adapters provides the GORM repository for user profiles.
package adapters

import (
	"context"
	"fmt"

	"github.com/oapi-codegen/nullable"
	"gorm.io/gorm"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/profile/usecase"
	"onboarding_backend/internal/platform/db/model"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileRepository creates a new instance of profileGorm.
func NewProfileRepository(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

func (r *profileGorm) UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ApplyPatch updates only the columns present in patch.
func (r *profileGorm) ApplyPatch(ctx context.Context, userID string, patch usecase.ProfilePatch) (*entity.Profile, error) {
	db := r.db.WithContext(ctx)

	p, err := model.EnsureProfile(db, userID)
	if err != nil {
		return nil, err
	}

	columns := patchColumns(patch)
	if len(columns) == 0 {
		return p.ToEntity(), nil
	}
	if err := db.Model(p).Updates(columns).Error; err != nil {
		return nil, fmt.Errorf("apply profile patch: %w", err)
	}
	if err := db.First(p, "id = ?", p.ID).Error; err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	return p.ToEntity(), nil
}

// patchColumns maps set fields to column values. Null becomes SQL NULL.
func patchColumns(patch usecase.ProfilePatch) map[string]any {
	columns := map[string]any{}
	addColumn(columns, "about_me", patch.AboutMe)
	addColumn(columns, "street_address", patch.StreetAddress)
	addColumn(columns, "city", patch.City)
	addColumn(columns, "state", patch.State)
	addColumn(columns, "zip_code", patch.ZipCode)
	addColumn(columns, "birthdate", patch.Birthdate)
	return columns
}

// addColumn sets columns[name] to a *T, nil for an explicit null.
func addColumn[T any](columns map[string]any, name string, v nullable.Nullable[T]) {
	if !v.IsSpecified() {
		return
	}
	if v.IsNull() {
		columns[name] = (*T)(nil)
		return
	}
	val := v.MustGet()
	columns[name] = &val
}
