// Package model holds the GORM models mapped onto the migrated schema and
// their conversions to domain entities.
package model

import (
	"time"

	"onboarding_backend/internal/domain/entity"
)

// User maps the users table.
type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Email     string `gorm:"size:254;not null"`
	Username  string `gorm:"size:150;not null"`
	Password  string `gorm:"size:255;not null"`
	IsActive  bool   `gorm:"not null"`
	IsStaff   bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}

// Profile maps the user_profiles table.
type Profile struct {
	ID            string `gorm:"primaryKey;size:36"`
	UserID        string `gorm:"size:36;not null"`
	AboutMe       *string
	StreetAddress *string    `gorm:"size:255"`
	City          *string    `gorm:"size:100"`
	State         *string    `gorm:"size:2"`
	ZipCode       *string    `gorm:"size:10"`
	Birthdate     *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM.
func (Profile) TableName() string {
	return "user_profiles"
}

// OnboardingConfig maps the onboarding_configs table.
type OnboardingConfig struct {
	ID         string `gorm:"primaryKey;size:36"`
	Component  string `gorm:"size:20;not null"`
	PageNumber int    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName returns the table name for GORM.
func (OnboardingConfig) TableName() string {
	return "onboarding_configs"
}

// ToEntity converts the GORM model to a domain entity.
func (m *User) ToEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		IsActive:  m.IsActive,
		IsStaff:   m.IsStaff,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFromEntity converts a domain entity to a GORM model.
func UserFromEntity(u *entity.User) *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
		IsActive:  u.IsActive,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToEntity converts the GORM model to a domain entity.
func (m *Profile) ToEntity() *entity.Profile {
	return &entity.Profile{
		ID:            m.ID,
		UserID:        m.UserID,
		AboutMe:       m.AboutMe,
		StreetAddress: m.StreetAddress,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		Birthdate:     m.Birthdate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToEntity converts the GORM model to a domain entity.
func (m *OnboardingConfig) ToEntity() entity.OnboardingConfig {
	return entity.OnboardingConfig{
		ID:         m.ID,
		Component:  entity.Component(m.Component),
		PageNumber: m.PageNumber,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
