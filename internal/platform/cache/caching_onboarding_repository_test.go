package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/onboarding/usecase"
)

// mockConfigRepository はテスト用のConfigRepositoryモック実装です。
type mockConfigRepository struct {
	listFn        func(ctx context.Context) ([]entity.OnboardingConfig, error)
	updatePagesFn func(ctx context.Context, updates []usecase.PageUpdate) error
	replaceAllFn  func(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error)

	listCalls int
}

func (m *mockConfigRepository) List(ctx context.Context) ([]entity.OnboardingConfig, error) {
	m.listCalls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockConfigRepository) UpdatePages(ctx context.Context, updates []usecase.PageUpdate) error {
	if m.updatePagesFn != nil {
		return m.updatePagesFn(ctx, updates)
	}
	return nil
}

func (m *mockConfigRepository) ReplaceAll(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error) {
	if m.replaceAllFn != nil {
		return m.replaceAllFn(ctx, configs)
	}
	return configs, nil
}

var sampleConfigs = []entity.OnboardingConfig{
	{ID: "a", Component: entity.ComponentAbout, PageNumber: 2},
	{ID: "b", Component: entity.ComponentBirthdate, PageNumber: 3},
}

// TestNewCachingOnboardingRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingOnboardingRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "onboarding"},
		{"negative ttl uses default", -time.Minute, "", 5 * time.Minute, "onboarding"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingOnboardingRepository(nil, tt.ttl, &mockConfigRepository{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, repo.ttl)
			assert.Equal(t, tt.expectedNamespace, repo.namespace)
		})
	}
}

// TestCachingOnboardingRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingOnboardingRepository_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockConfigRepository{
		listFn: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return sampleConfigs, nil },
	}
	repo := NewCachingOnboardingRepository(nil, time.Minute, inner, "")
	ctx := context.Background()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleConfigs, got)

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.listCalls)

	require.NoError(t, repo.UpdatePages(ctx, []usecase.PageUpdate{{Component: entity.ComponentAbout, PageNumber: 3}}))
	_, err = repo.ReplaceAll(ctx, entity.DefaultOnboardingConfigs())
	require.NoError(t, err)
}

// TestCachingOnboardingRepository_List_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingOnboardingRepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, err := json.Marshal(sampleConfigs)
	require.NoError(t, err)
	mock.ExpectGet("onboarding:config").SetVal(string(cachedJSON))

	inner := &mockConfigRepository{}
	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, inner, "")

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleConfigs, got)
	assert.Equal(t, 0, inner.listCalls, "inner repository should not be called on cache hit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_List_CacheMiss はキャッシュミス時にDBから取得しキャッシュへ保存することを検証します。
func TestCachingOnboardingRepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, err := json.Marshal(sampleConfigs)
	require.NoError(t, err)
	mock.ExpectGet("onboarding:config").RedisNil()
	mock.ExpectSet("onboarding:config", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockConfigRepository{
		listFn: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return sampleConfigs, nil },
	}
	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, inner, "")

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleConfigs, got)
	assert.Equal(t, 1, inner.listCalls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_List_CorruptedCache は壊れたキャッシュを削除して再構築することを検証します。
func TestCachingOnboardingRepository_List_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, err := json.Marshal(sampleConfigs)
	require.NoError(t, err)
	mock.ExpectGet("onboarding:config").SetVal("invalid json")
	mock.ExpectDel("onboarding:config").SetVal(1)
	mock.ExpectSet("onboarding:config", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockConfigRepository{
		listFn: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return sampleConfigs, nil },
	}
	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, inner, "")

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, sampleConfigs, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_List_InnerError はDBエラー時にキャッシュへ保存しないことを検証します。
func TestCachingOnboardingRepository_List_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("onboarding:config").RedisNil()

	dbErr := errors.New("database error")
	inner := &mockConfigRepository{
		listFn: func(ctx context.Context) ([]entity.OnboardingConfig, error) { return nil, dbErr },
	}
	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, inner, "")

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_UpdatePages_Invalidates は更新成功後にキャッシュを削除することを検証します。
func TestCachingOnboardingRepository_UpdatePages_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("onboarding:config").SetVal(1)

	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, &mockConfigRepository{}, "")

	err := repo.UpdatePages(context.Background(), []usecase.PageUpdate{{Component: entity.ComponentAbout, PageNumber: 3}})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_UpdatePages_InnerError は更新失敗時にキャッシュへ触れないことを検証します。
func TestCachingOnboardingRepository_UpdatePages_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockConfigRepository{
		updatePagesFn: func(ctx context.Context, updates []usecase.PageUpdate) error {
			return usecase.ErrComponentNotFound
		},
	}
	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, inner, "")

	err := repo.UpdatePages(context.Background(), []usecase.PageUpdate{{Component: "nonexistent", PageNumber: 2}})

	assert.ErrorIs(t, err, usecase.ErrComponentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingOnboardingRepository_ReplaceAll_Invalidates は再シード後にキャッシュを削除することを検証します。
func TestCachingOnboardingRepository_ReplaceAll_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("onboarding:config").SetErr(errors.New("redis down"))

	repo := NewCachingOnboardingRepository(rdb, 5*time.Minute, &mockConfigRepository{}, "")

	got, err := repo.ReplaceAll(context.Background(), entity.DefaultOnboardingConfigs())

	require.NoError(t, err, "cache failures must not fail the write")
	assert.Len(t, got, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
