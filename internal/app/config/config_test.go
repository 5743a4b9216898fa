package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "LOG_LEVEL", "ONBOARDING_CACHE_TTL", "SHUTDOWN_TIMEOUT",
		"AUTH_RATE_LIMIT", "AUTH_RATE_WINDOW", "CORS_ALLOWED_ORIGINS",
		"ADMIN_SITE_HEADER", "ADMIN_SITE_TITLE", "ADMIN_INDEX_TITLE", "ADMIN_SITE_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.OnboardingCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 20, cfg.AuthRateLimit)
	assert.Equal(t, time.Minute, cfg.AuthRateWindow)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "Onboarding Backend Admin", cfg.Admin.SiteHeader)
	assert.Equal(t, "/healthz", cfg.Admin.SiteURL)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ONBOARDING_CACHE_TTL", "30s")
	t.Setenv("ADMIN_SITE_HEADER", "Custom Admin")

	cfg, err := LoadConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.OnboardingCacheTTL)
	assert.Equal(t, "Custom Admin", cfg.Admin.SiteHeader)
}

func TestLoadConfigFromEnv_Invalid(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "verbose")

		_, err := LoadConfigFromEnv()

		assert.Error(t, err)
	})

	t.Run("origin without scheme", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,localhost:3000")

		_, err := LoadConfigFromEnv()

		assert.Error(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("ONBOARDING_CACHE_TTL", "soon")

		_, err := LoadConfigFromEnv()

		assert.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
