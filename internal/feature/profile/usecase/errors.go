// Package usecase implements the profile partial update.
package usecase

import "onboarding_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned for an unknown or malformed user id.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "User not found")

	ErrInvalidState         = apperr.Validation("state must be exactly 2 characters")
	ErrStreetAddressTooLong = apperr.Validation("street_address must be at most 255 characters")
	ErrCityTooLong          = apperr.Validation("city must be at most 100 characters")
	ErrZipCodeTooLong       = apperr.Validation("zip_code must be at most 10 characters")
)
