// Package config holds the application-level settings that do not belong to a
// single platform package.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// AdminSite names the admin surface.
type AdminSite struct {
	SiteHeader string `env:"ADMIN_SITE_HEADER" envDefault:"Onboarding Backend Admin"`
	SiteTitle  string `env:"ADMIN_SITE_TITLE" envDefault:"Onboarding Backend Panel"`
	IndexTitle string `env:"ADMIN_INDEX_TITLE" envDefault:"Welcome to Onboarding Backend Panel"`
	SiteURL    string `env:"ADMIN_SITE_URL" envDefault:"/healthz"`
}

// Config is built once in main and passed down explicitly.
type Config struct {
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	OnboardingCacheTTL time.Duration `env:"ONBOARDING_CACHE_TTL" envDefault:"5m"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// AUTH_RATE_LIMIT=0 で無効
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT" envDefault:"20"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`

	// フロントエンドのオリジン。空ならCORSヘッダーを付けない
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Admin AdminSite
}

// LoadConfigFromEnv reads the application configuration from environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse app env: %w", err)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	for _, o := range cfg.CORSAllowedOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return Config{}, fmt.Errorf("invalid CORS_ALLOWED_ORIGINS entry %q", o)
		}
	}
	return cfg, nil
}

// ParseLogLevel maps LOG_LEVEL to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
