// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"onboarding_backend/internal/feature/onboarding/adapters"
	"onboarding_backend/internal/feature/onboarding/usecase"
	"onboarding_backend/internal/platform/cache"
)

// NewOnboardingRepository creates a ConfigRepository implementation.
// If Redis is available, the GORM repository is wrapped with a read-through cache.
// Otherwise, it reads the database directly.
func NewOnboardingRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.ConfigRepository {
	repo := adapters.NewOnboardingRepository(db)
	if rdb != nil {
		return cache.NewCachingOnboardingRepository(rdb, ttl, repo, "onboarding")
	}
	return repo
}
