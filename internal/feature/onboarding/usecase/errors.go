// Package usecase implements the onboarding configuration operations.
package usecase

import (
	"onboarding_backend/internal/shared/apperr"
)

var (
	// ErrComponentNotFound is returned for an unknown or unseeded component.
	ErrComponentNotFound = apperr.New(apperr.KindNotFound, "Component not found")

	// ErrInvalidPage is returned when page_number is not an allowed page.
	ErrInvalidPage = apperr.Validation("page_number must be 2 or 3")

	// ErrNoUpdates is returned by BulkUpdate for an empty update list.
	ErrNoUpdates = apperr.Validation("updates must not be empty")

	// ErrDuplicateComponent is returned when a bulk update names a component twice.
	ErrDuplicateComponent = apperr.Validation("component listed more than once")
)
