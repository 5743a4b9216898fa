package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

// mockConfigRepository is a mock implementation of the ConfigRepository interface.
type mockConfigRepository struct {
	ListFunc        func(ctx context.Context) ([]entity.OnboardingConfig, error)
	UpdatePagesFunc func(ctx context.Context, updates []PageUpdate) error
	ReplaceAllFunc  func(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error)

	updateCalls int
}

func (m *mockConfigRepository) List(ctx context.Context) ([]entity.OnboardingConfig, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockConfigRepository) UpdatePages(ctx context.Context, updates []PageUpdate) error {
	m.updateCalls++
	if m.UpdatePagesFunc != nil {
		return m.UpdatePagesFunc(ctx, updates)
	}
	return nil
}

func (m *mockConfigRepository) ReplaceAll(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error) {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, configs)
	}
	return configs, nil
}

func TestOnboardingUsecase_List(t *testing.T) {
	t.Parallel()

	t.Run("success: returns repository rows", func(t *testing.T) {
		t.Parallel()

		want := []entity.OnboardingConfig{
			{ID: "1", Component: entity.ComponentAbout, PageNumber: 2},
			{ID: "2", Component: entity.ComponentBirthdate, PageNumber: 3},
		}
		repo := &mockConfigRepository{
			ListFunc: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return want, nil },
		}

		got, err := NewOnboardingUsecase(repo).List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("failure: repository error", func(t *testing.T) {
		t.Parallel()

		repoErr := errors.New("db down")
		repo := &mockConfigRepository{
			ListFunc: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return nil, repoErr },
		}

		_, err := NewOnboardingUsecase(repo).List(context.Background())

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestOnboardingUsecase_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		component   string
		page        int
		repoErr     error
		wantErr     error
		wantKind    apperr.Kind
		wantRepoHit bool
	}{
		{
			name:        "success: about to page 3",
			component:   "about",
			page:        3,
			wantRepoHit: true,
		},
		{
			name:      "failure: unknown component",
			component: "nonexistent",
			page:      2,
			wantErr:   ErrComponentNotFound,
			wantKind:  apperr.KindNotFound,
		},
		{
			name:      "failure: page out of range",
			component: "about",
			page:      4,
			wantErr:   ErrInvalidPage,
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "failure: unknown component wins over bad page",
			component: "nonexistent",
			page:      9,
			wantErr:   ErrComponentNotFound,
			wantKind:  apperr.KindNotFound,
		},
		{
			name:        "failure: row missing in storage",
			component:   "address",
			page:        3,
			repoErr:     ErrComponentNotFound,
			wantErr:     ErrComponentNotFound,
			wantKind:    apperr.KindNotFound,
			wantRepoHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []PageUpdate
			repo := &mockConfigRepository{
				UpdatePagesFunc: func(ctx context.Context, updates []PageUpdate) error {
					got = updates
					return tt.repoErr
				},
			}

			err := NewOnboardingUsecase(repo).Update(context.Background(), tt.component, tt.page)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, []PageUpdate{{Component: entity.Component(tt.component), PageNumber: tt.page}}, got)
			}
			assert.Equal(t, tt.wantRepoHit, repo.updateCalls == 1)
		})
	}
}

func TestOnboardingUsecase_BulkUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		updates []PageUpdate
		wantErr error
	}{
		{
			name: "success: two components",
			updates: []PageUpdate{
				{Component: entity.ComponentAbout, PageNumber: 3},
				{Component: entity.ComponentBirthdate, PageNumber: 2},
			},
		},
		{
			name:    "failure: empty list",
			updates: nil,
			wantErr: ErrNoUpdates,
		},
		{
			name: "failure: one invalid entry rejects the batch",
			updates: []PageUpdate{
				{Component: entity.ComponentAbout, PageNumber: 3},
				{Component: entity.ComponentAddress, PageNumber: 1},
			},
			wantErr: ErrInvalidPage,
		},
		{
			name: "failure: duplicate component",
			updates: []PageUpdate{
				{Component: entity.ComponentAbout, PageNumber: 3},
				{Component: entity.ComponentAbout, PageNumber: 2},
			},
			wantErr: ErrDuplicateComponent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockConfigRepository{}
			err := NewOnboardingUsecase(repo).BulkUpdate(context.Background(), tt.updates)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, repo.updateCalls, "repository must not be touched when validation fails")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, repo.updateCalls)
		})
	}
}

func TestOnboardingUsecase_Seed(t *testing.T) {
	t.Parallel()

	var got []entity.OnboardingConfig
	repo := &mockConfigRepository{
		ReplaceAllFunc: func(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error) {
			got = configs
			return configs, nil
		},
	}

	seeded, err := NewOnboardingUsecase(repo).Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultOnboardingConfigs(), got)
	assert.Len(t, seeded, 3)
}
