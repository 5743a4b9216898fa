// Package jwtmw issues and validates signed session tokens and provides the
// gin middleware that guards authenticated routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"onboarding_backend/internal/shared/apperr"
)

// ErrInvalidToken is returned for malformed, tampered or expired tokens.
var ErrInvalidToken = apperr.New(apperr.KindUnauthorized, "Invalid token")

// Claims is the token payload.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService signs tokens with a shared HMAC secret.
// Validation needs nothing but the token and the secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a TokenService.
type Option func(*TokenService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to DefaultTTL.
func NewTokenService(secret string, ttl time.Duration, opts ...Option) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue returns a signed token for userID expiring TTL after issuance.
func (s *TokenService) Issue(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of token and returns its user id.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
