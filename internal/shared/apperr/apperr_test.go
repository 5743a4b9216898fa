package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate email", New(KindDuplicateEmail, "Email already registered"), http.StatusBadRequest},
		{"validation", Validation("state must be 2 characters"), http.StatusBadRequest},
		{"invalid credentials", New(KindInvalidCredentials, "Invalid credentials"), http.StatusUnauthorized},
		{"unauthorized", New(KindUnauthorized, "Invalid token"), http.StatusUnauthorized},
		{"forbidden", New(KindForbidden, "staff only"), http.StatusForbidden},
		{"not found", New(KindNotFound, "User not found"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("update: %w", New(KindNotFound, "User not found")), http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessageOf_HidesInternalErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "internal server error", MessageOf(errors.New("dial tcp 10.0.0.1:5432: refused")))
	assert.Equal(t, "internal server error", MessageOf(Wrap(KindInternal, "db down", errors.New("x"))))
	assert.Equal(t, "User not found", MessageOf(fmt.Errorf("x: %w", New(KindNotFound, "User not found"))))
}

func TestError_IsAndUnwrap(t *testing.T) {
	t.Parallel()

	sentinel := New(KindNotFound, "Component not found")
	wrapped := fmt.Errorf("update config: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	cause := errors.New("constraint failed")
	e := Wrap(KindValidation, "invalid profile", cause)
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, "invalid profile: constraint failed", e.Error())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "duplicate_email", KindDuplicateEmail.String())
	assert.Equal(t, "internal", KindInternal.String())
	assert.Equal(t, "not_found", KindNotFound.String())
}
