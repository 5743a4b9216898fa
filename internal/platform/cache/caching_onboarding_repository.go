// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/onboarding/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "onboarding"
)

// CachingOnboardingRepository decorates a ConfigRepository with Redis caching.
// Reads go through the cache; every write drops the cached layout.
type CachingOnboardingRepository struct {
	inner     usecase.ConfigRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ConfigRepository = (*CachingOnboardingRepository)(nil)

// NewCachingOnboardingRepository decorates a ConfigRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "onboarding".
// A nil rdb disables caching.
func NewCachingOnboardingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ConfigRepository, namespace string) *CachingOnboardingRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingOnboardingRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List returns the layout, checking the cache first then falling back to the database.
func (c *CachingOnboardingRepository) List(ctx context.Context) ([]entity.OnboardingConfig, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.cacheKey()

	// 1) キャッシュを確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.OnboardingConfig
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) DBへフォールバック
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュに保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// UpdatePages updates the database and invalidates the cached layout.
func (c *CachingOnboardingRepository) UpdatePages(ctx context.Context, updates []usecase.PageUpdate) error {
	if err := c.inner.UpdatePages(ctx, updates); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ReplaceAll reseeds the database and invalidates the cached layout.
func (c *CachingOnboardingRepository) ReplaceAll(ctx context.Context, configs []entity.OnboardingConfig) ([]entity.OnboardingConfig, error) {
	out, err := c.inner.ReplaceAll(ctx, configs)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return out, nil
}

// invalidate drops the cached layout. Failures are ignored; the entry expires after ttl.
func (c *CachingOnboardingRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey()).Err()
}

func (c *CachingOnboardingRepository) cacheKey() string {
	return c.namespace + ":config"
}
