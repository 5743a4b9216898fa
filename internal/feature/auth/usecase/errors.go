// Package usecase implements the business logic for the auth feature.
package usecase

import "onboarding_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned by the repository when no user matches.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "User not found")

	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = apperr.New(apperr.KindDuplicateEmail, "Email already registered")

	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = apperr.Validation("Username already taken")

	// ErrWeakPassword is returned when the password is shorter than minPasswordLength.
	ErrWeakPassword = apperr.Validation("Password must be at least 8 characters long")

	// ErrInvalidCredentials is returned for every login failure.
	ErrInvalidCredentials = apperr.New(apperr.KindInvalidCredentials, "Invalid credentials")

	// ErrUnauthorized is returned when a valid token names a missing or inactive user.
	ErrUnauthorized = apperr.New(apperr.KindUnauthorized, "Invalid token")
)
