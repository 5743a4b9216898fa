package usecase

import (
	"context"
	"fmt"

	"onboarding_backend/internal/domain/entity"
)

// PageUpdate moves a component to a page.
type PageUpdate struct {
	Component  entity.Component
	PageNumber int
}

// ConfigRepository abstracts the persistence layer for onboarding configuration.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ConfigRepository interface {
	// List returns every row ordered by page number, then component.
	List(ctx context.Context) ([]entity.OnboardingConfig, error)

	// UpdatePages applies all updates atomically. It returns ErrComponentNotFound
	// and changes nothing if any component has no row.
	UpdatePages(ctx context.Context, updates []PageUpdate) error

	// ReplaceAll deletes every row and inserts configs in one transaction.
	ReplaceAll(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error)
}

// OnboardingUsecase provides the onboarding configuration operations.
type OnboardingUsecase struct {
	repo ConfigRepository
}

// NewOnboardingUsecase creates a new OnboardingUsecase with the given repository.
func NewOnboardingUsecase(repo ConfigRepository) *OnboardingUsecase {
	return &OnboardingUsecase{repo: repo}
}

// List returns the current wizard layout.
func (u *OnboardingUsecase) List(ctx context.Context) ([]entity.OnboardingConfig, error) {
	return u.repo.List(ctx)
}

// Update moves one component to page.
func (u *OnboardingUsecase) Update(ctx context.Context, component string, page int) error {
	return u.BulkUpdate(ctx, []PageUpdate{{Component: entity.Component(component), PageNumber: page}})
}

// BulkUpdate validates every update before applying any of them.
func (u *OnboardingUsecase) BulkUpdate(ctx context.Context, updates []PageUpdate) error {
	if len(updates) == 0 {
		return ErrNoUpdates
	}

	seen := make(map[entity.Component]struct{}, len(updates))
	for _, up := range updates {
		if !up.Component.Valid() {
			return fmt.Errorf("component %q: %w", up.Component, ErrComponentNotFound)
		}
		if !entity.ValidPage(up.PageNumber) {
			return ErrInvalidPage
		}
		if _, dup := seen[up.Component]; dup {
			return ErrDuplicateComponent
		}
		seen[up.Component] = struct{}{}
	}

	return u.repo.UpdatePages(ctx, updates)
}

// Seed clears the configuration and writes the default layout.
// Running it repeatedly always leaves exactly the default rows.
func (u *OnboardingUsecase) Seed(ctx context.Context) ([]entity.OnboardingConfig, error) {
	return u.repo.ReplaceAll(ctx, entity.DefaultOnboardingConfigs())
}
