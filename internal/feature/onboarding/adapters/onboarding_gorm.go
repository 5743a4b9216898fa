// Package adapters provides the GORM repository for onboarding configuration.
package adapters

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/onboarding/usecase"
	"onboarding_backend/internal/platform/db/model"
)

// onboardingGorm is a GORM implementation of usecase.ConfigRepository.
type onboardingGorm struct {
	db *gorm.DB
}

var _ usecase.ConfigRepository = (*onboardingGorm)(nil)

// NewOnboardingRepository creates a new instance of onboardingGorm.
func NewOnboardingRepository(db *gorm.DB) *onboardingGorm {
	return &onboardingGorm{db: db}
}

// List returns all rows ordered by page_number, then component.
func (r *onboardingGorm) List(ctx context.Context) ([]entity.OnboardingConfig, error) {
	var rows []model.OnboardingConfig
	if err := r.db.WithContext(ctx).
		Order("page_number ASC").
		Order("component ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list onboarding configs: %w", err)
	}

	out := make([]entity.OnboardingConfig, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}

// UpdatePages updates every row in a single transaction.
func (r *onboardingGorm) UpdatePages(ctx context.Context, updates []usecase.PageUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, up := range updates {
			result := tx.Model(&model.OnboardingConfig{}).
				Where("component = ?", string(up.Component)).
				Update("page_number", up.PageNumber)
			if result.Error != nil {
				return fmt.Errorf("update onboarding config %q: %w", up.Component, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("component %q: %w", up.Component, usecase.ErrComponentNotFound)
			}
		}
		return nil
	})
}

// ReplaceAll deletes every row and bulk-inserts configs.
func (r *onboardingGorm) ReplaceAll(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error) {
	rows := make([]model.OnboardingConfig, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, model.OnboardingConfig{
			ID:         uuid.NewString(),
			Component:  string(c.Component),
			PageNumber: c.PageNumber,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.OnboardingConfig{}).Error; err != nil {
			return fmt.Errorf("clear onboarding configs: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert onboarding configs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]entity.OnboardingConfig, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToEntity())
	}
	return out, nil
}
