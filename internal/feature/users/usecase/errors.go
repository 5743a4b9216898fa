// Package usecase implements user listing and the staff-only user administration.
package usecase

import "onboarding_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned for an unknown user id or email.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "User not found")

	// ErrStaffOnly is returned to authenticated callers without the staff flag.
	ErrStaffOnly = apperr.New(apperr.KindForbidden, "staff only")
)
