package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"onboarding_backend/internal/domain/entity"
)

// UserRepository abstracts the persistence layer for user administration.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// ListWithProfiles joins every user with its profile, ordered by created_at then email.
	// Users without a profile carry a nil Profile.
	ListWithProfiles(ctx context.Context) ([]entity.UserSummary, error)

	// CreateMissingProfiles inserts an empty profile for every user lacking one
	// and returns how many were created.
	CreateMissingProfiles(ctx context.Context) (int, error)

	// Search matches query case-insensitively against email and username,
	// ordered by email. An empty query returns every user.
	Search(ctx context.Context, query string) ([]entity.User, error)

	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Delete removes the user and its profile. It returns ErrUserNotFound when
	// no row matched.
	Delete(ctx context.Context, id string) error

	// SetStaff updates the staff flag. It returns ErrUserNotFound when no row matched.
	SetStaff(ctx context.Context, id string, staff bool) error
}

// UsersUsecase provides the user listing and administration operations.
type UsersUsecase struct {
	repo UserRepository
}

// NewUsersUsecase creates a new UsersUsecase with the given repository.
func NewUsersUsecase(repo UserRepository) *UsersUsecase {
	return &UsersUsecase{repo: repo}
}

// List returns every user with its profile fields. It never writes.
func (u *UsersUsecase) List(ctx context.Context) ([]entity.UserSummary, error) {
	return u.repo.ListWithProfiles(ctx)
}

// BackfillProfiles creates the profiles missing for legacy users.
func (u *UsersUsecase) BackfillProfiles(ctx context.Context) (int, error) {
	return u.repo.CreateMissingProfiles(ctx)
}

// AdminList returns the users whose email or username contains search.
func (u *UsersUsecase) AdminList(ctx context.Context, search string) ([]entity.User, error) {
	return u.repo.Search(ctx, strings.TrimSpace(search))
}

// Delete removes a user and its profile.
func (u *UsersUsecase) Delete(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return ErrUserNotFound
	}
	return u.repo.Delete(ctx, userID)
}

// SetStaff grants or revokes the staff flag of the user named by an id or an email.
func (u *UsersUsecase) SetStaff(ctx context.Context, idOrEmail string, staff bool) (*entity.User, error) {
	user, err := u.resolve(ctx, idOrEmail)
	if err != nil {
		return nil, err
	}
	if err := u.repo.SetStaff(ctx, user.ID, staff); err != nil {
		return nil, err
	}
	user.IsStaff = staff
	return user, nil
}

func (u *UsersUsecase) resolve(ctx context.Context, idOrEmail string) (*entity.User, error) {
	idOrEmail = strings.TrimSpace(idOrEmail)
	if _, err := uuid.Parse(idOrEmail); err == nil {
		return u.repo.FindByID(ctx, idOrEmail)
	}
	return u.repo.FindByEmail(ctx, idOrEmail)
}

// IsStaff reports whether userID belongs to an active staff user.
// Unknown users are not staff.
func (u *UsersUsecase) IsStaff(ctx context.Context, userID string) (bool, error) {
	user, err := u.repo.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find user: %w", err)
	}
	return user.IsActive && user.IsStaff, nil
}
