package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultTTL is the lifetime of an issued token.
const DefaultTTL = 24 * time.Hour

// Config holds the signing settings.
type Config struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

// LoadConfigFromEnv reads JWT_SECRET and JWT_TTL. A missing secret is an error.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse jwt env: %w", err)
	}
	if cfg.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return cfg, nil
}
