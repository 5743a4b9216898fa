package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"onboarding_backend/internal/app/config"
	"onboarding_backend/internal/app/router"
	authadapters "onboarding_backend/internal/feature/auth/adapters"
	authhandler "onboarding_backend/internal/feature/auth/transport/handler"
	authusecase "onboarding_backend/internal/feature/auth/usecase"
	onboardinghandler "onboarding_backend/internal/feature/onboarding/transport/handler"
	onboardingusecase "onboarding_backend/internal/feature/onboarding/usecase"
	profileadapters "onboarding_backend/internal/feature/profile/adapters"
	profilehandler "onboarding_backend/internal/feature/profile/transport/handler"
	profileusecase "onboarding_backend/internal/feature/profile/usecase"
	usersadapters "onboarding_backend/internal/feature/users/adapters"
	usershandler "onboarding_backend/internal/feature/users/transport/handler"
	"onboarding_backend/internal/feature/users/transport/http/dto"
	usersusecase "onboarding_backend/internal/feature/users/usecase"
	"onboarding_backend/internal/platform/db"
	"onboarding_backend/internal/platform/http/handler"
	jwtmw "onboarding_backend/internal/platform/jwt"
	"onboarding_backend/internal/shared/ratelimiter"
)

// Deps are the long-lived resources created in main.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client // nil when Redis is not configured
	Tokens *jwtmw.TokenService
	Config config.Config
}

// NewHandlers wires repositories, usecases and handlers for the router.
func NewHandlers(d Deps) router.Handlers {
	// Repository
	userRepo := authadapters.NewUserRepository(d.DB)
	profileRepo := profileadapters.NewProfileRepository(d.DB)
	usersRepo := usersadapters.NewUsersRepository(d.DB)
	onboardingRepo := NewOnboardingRepository(d.Redis, d.DB, d.Config.OnboardingCacheTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, d.Tokens)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	usersUC := usersusecase.NewUsersUsecase(usersRepo)
	onboardingUC := onboardingusecase.NewOnboardingUsecase(onboardingRepo)

	h := router.Handlers{
		Auth:       authhandler.NewAuthHandler(authUC),
		Profile:    profilehandler.NewProfileHandler(profileUC),
		Onboarding: onboardinghandler.NewOnboardingHandler(onboardingUC),
		Users:      usershandler.NewUsersHandler(usersUC),
		Admin:      usershandler.NewAdminHandler(usersUC, siteRes(d.Config.Admin)),
		Tokens:     d.Tokens,
		Staff:      usersUC,
		Ready:      readyChecks(d),

		CORSOrigins: d.Config.CORSAllowedOrigins,
	}
	// typed nil を interface に入れない
	if l := ratelimiter.NewLimiter(d.Config.AuthRateLimit, d.Config.AuthRateWindow); l != nil {
		h.AuthLimit = l
	}
	return h
}

func siteRes(a config.AdminSite) dto.SiteRes {
	return dto.SiteRes{
		SiteHeader: a.SiteHeader,
		SiteTitle:  a.SiteTitle,
		IndexTitle: a.IndexTitle,
		SiteURL:    a.SiteURL,
	}
}

func readyChecks(d Deps) map[string]handler.Check {
	checks := map[string]handler.Check{
		"db": func(ctx context.Context) error { return db.Ping(ctx, d.DB) },
	}
	if d.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return d.Redis.Ping(ctx).Err() }
	}
	return checks
}
