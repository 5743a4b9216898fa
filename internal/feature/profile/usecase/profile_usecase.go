package usecase

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"

	"onboarding_backend/internal/domain/entity"
)

const (
	stateLength         = 2
	maxStreetAddressLen = 255
	maxCityLen          = 100
	maxZipCodeLen       = 10
)

// ProfilePatch lists the profile fields a request may change.
// Absent fields are left alone and null fields are cleared.
type ProfilePatch struct {
	AboutMe       nullable.Nullable[string]
	StreetAddress nullable.Nullable[string]
	City          nullable.Nullable[string]
	State         nullable.Nullable[string]
	ZipCode       nullable.Nullable[string]
	Birthdate     nullable.Nullable[time.Time]
}

// Empty reports whether no field is set.
func (p ProfilePatch) Empty() bool {
	return !p.AboutMe.IsSpecified() && !p.StreetAddress.IsSpecified() && !p.City.IsSpecified() &&
		!p.State.IsSpecified() && !p.ZipCode.IsSpecified() && !p.Birthdate.IsSpecified()
}

// Validate checks the length constraints of every non-null field.
// Get fails for absent and null values, so only values are checked.
func (p ProfilePatch) Validate() error {
	if s, err := p.State.Get(); err == nil && utf8.RuneCountInString(s) != stateLength {
		return ErrInvalidState
	}
	if s, err := p.StreetAddress.Get(); err == nil && utf8.RuneCountInString(s) > maxStreetAddressLen {
		return ErrStreetAddressTooLong
	}
	if s, err := p.City.Get(); err == nil && utf8.RuneCountInString(s) > maxCityLen {
		return ErrCityTooLong
	}
	if s, err := p.ZipCode.Get(); err == nil && utf8.RuneCountInString(s) > maxZipCodeLen {
		return ErrZipCodeTooLong
	}
	return nil
}

// ProfileRepository abstracts the persistence layer for profiles.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProfileRepository interface {
	UserExists(ctx context.Context, userID string) (bool, error)

	// ApplyPatch writes the set fields of patch to the user's profile,
	// creating the profile first if the user has none.
	ApplyPatch(ctx context.Context, userID string, patch ProfilePatch) (*entity.Profile, error)
}

// ProfileUsecase provides the profile operations.
type ProfileUsecase struct {
	repo ProfileRepository
}

// NewProfileUsecase creates a new ProfileUsecase with the given repository.
func NewProfileUsecase(repo ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{repo: repo}
}

// UpdateProfile applies patch to the profile of userID.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*entity.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrUserNotFound
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	exists, err := u.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	profile, err := u.repo.ApplyPatch(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
