package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	redisv9 "github.com/redis/go-redis/v9"

	"onboarding_backend/internal/app/config"
	"onboarding_backend/internal/app/di"
	"onboarding_backend/internal/app/router"
	"onboarding_backend/internal/platform/db"
	platformhttp "onboarding_backend/internal/platform/http"
	jwtmw "onboarding_backend/internal/platform/jwt"
	"onboarding_backend/internal/platform/redis"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg, err := config.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	level, _ := config.ParseLogLevel(appCfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	dbCfg, err := db.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	jwtCfg, err := jwtmw.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	redisCfg, err := redis.LoadConfigFromEnv()
	if err != nil {
		return err
	}

	// db
	gdb, err := db.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	// Redis（未設定・接続不可ならキャッシュなしで動作）
	var rdb *redisv9.Client
	if redisCfg.Enabled() {
		if tmp, err := redis.NewRedisClient(ctx, redisCfg); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	handlers := di.NewHandlers(di.Deps{
		DB:     gdb,
		Redis:  rdb,
		Tokens: jwtmw.NewTokenService(jwtCfg.Secret, jwtCfg.TTL),
		Config: appCfg,
	})
	srv := platformhttp.NewServer(appCfg.HTTPAddr, router.NewRouter(handlers))

	return platformhttp.Run(ctx, srv, appCfg.ShutdownTimeout)
}
