package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onboarding_backend/internal/platform/db"
)

// EnsureProfile returns the profile of userID, creating an empty one when the
// user has none. A concurrent insert losing on the unique user_id index reads
// the winner's row. Do not call it inside a transaction on PostgreSQL.
func EnsureProfile(tx *gorm.DB, userID string) (*Profile, error) {
	var p Profile
	err := tx.Where("user_id = ?", userID).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	p = Profile{ID: uuid.NewString(), UserID: userID}
	if err := tx.Create(&p).Error; err != nil {
		if !db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("create profile: %w", err)
		}
		// p には採番済みのIDが入っているので、別の変数に読み直す
		var existing Profile
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
			return nil, fmt.Errorf("find profile: %w", err)
		}
		return &existing, nil
	}
	return &p, nil
}
