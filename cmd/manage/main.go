// Command manage runs the administrative tasks that have no HTTP endpoint.
//
//	manage setup-onboarding
//	manage backfill-profiles
//	manage create-staff -user <id|email> [-revoke]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"onboarding_backend/internal/app/config"
	"onboarding_backend/internal/app/di"
	onboardingusecase "onboarding_backend/internal/feature/onboarding/usecase"
	usersadapters "onboarding_backend/internal/feature/users/adapters"
	usersusecase "onboarding_backend/internal/feature/users/usecase"
	"onboarding_backend/internal/platform/db"
	"onboarding_backend/internal/platform/redis"
)

const usage = `usage: manage <command> [flags]

commands:
  setup-onboarding    clear onboarding_configs and seed the default layout
  backfill-profiles   create empty profiles for users that have none
  create-staff        grant (or with -revoke, remove) the staff flag
`

var errUsage = errors.New("invalid usage")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// env is the resources a command needs.
type env struct {
	db  *gorm.DB
	rdb *redisv9.Client
	cfg config.Config
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	var task func(context.Context, env, []string, io.Writer) error
	switch cmd {
	case "setup-onboarding":
		task = setupOnboarding
	case "backfill-profiles":
		task = backfillProfiles
	case "create-staff":
		task = createStaff
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}

	e, closeEnv, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer closeEnv()

	return task(ctx, e, rest, out)
}

// openEnv is replaced in tests.
var openEnv = openEnvFromConfig

func openEnvFromConfig(ctx context.Context) (env, func(), error) {
	appCfg, err := config.LoadConfigFromEnv()
	if err != nil {
		return env{}, nil, err
	}
	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		return env{}, nil, err
	}
	gdb, err := db.Open(ctx, dbCfg)
	if err != nil {
		return env{}, nil, err
	}

	// Redisが使えればシード後にキャッシュも無効化する
	var rdb *redisv9.Client
	if redisCfg, err := redis.LoadConfigFromEnv(); err == nil && redisCfg.Enabled() {
		if tmp, err := redis.NewRedisClient(ctx, redisCfg); err == nil {
			rdb = tmp
		} else {
			slog.Warn("redis unavailable, cached layout will expire on its own", "error", err)
		}
	}

	closeFn := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return env{db: gdb, rdb: rdb, cfg: appCfg}, closeFn, nil
}

func setupOnboarding(ctx context.Context, e env, args []string, out io.Writer) error {
	if len(args) > 0 {
		return errUsage
	}
	uc := onboardingusecase.NewOnboardingUsecase(di.NewOnboardingRepository(e.rdb, e.db, e.cfg.OnboardingCacheTTL))

	configs, err := uc.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed onboarding: %w", err)
	}
	for _, c := range configs {
		fmt.Fprintf(out, "%s -> page %d\n", c.Component, c.PageNumber)
	}
	fmt.Fprintln(out, "Successfully set up onboarding configuration")
	return nil
}

func backfillProfiles(ctx context.Context, e env, args []string, out io.Writer) error {
	if len(args) > 0 {
		return errUsage
	}
	uc := usersusecase.NewUsersUsecase(usersadapters.NewUsersRepository(e.db))

	created, err := uc.BackfillProfiles(ctx)
	if err != nil {
		return fmt.Errorf("backfill profiles: %w", err)
	}
	fmt.Fprintf(out, "Created %d profile(s)\n", created)
	return nil
}

func createStaff(ctx context.Context, e env, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("create-staff", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	user := fs.String("user", "", "user id or email")
	revoke := fs.Bool("revoke", false, "remove the staff flag instead of granting it")
	if err := fs.Parse(args); err != nil || *user == "" {
		return errUsage
	}

	uc := usersusecase.NewUsersUsecase(usersadapters.NewUsersRepository(e.db))
	u, err := uc.SetStaff(ctx, *user, !*revoke)
	if err != nil {
		return fmt.Errorf("set staff: %w", err)
	}
	fmt.Fprintf(out, "%s is_staff=%t\n", u.Email, u.IsStaff)
	return nil
}
