// Package apperr defines the closed set of error kinds returned by usecases
// and their mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal is an unexpected failure (store unavailable, hashing failure, ...).
	KindInternal Kind = iota
	// KindDuplicateEmail means the email is already registered.
	KindDuplicateEmail
	// KindInvalidCredentials means the login identifier or password did not match.
	KindInvalidCredentials
	// KindUnauthorized means the bearer token is missing, malformed, invalid or expired.
	KindUnauthorized
	// KindForbidden means the caller is authenticated but lacks the staff flag.
	KindForbidden
	// KindNotFound means the addressed user or component does not exist.
	KindNotFound
	// KindValidation means a write violated a field constraint.
	KindValidation
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindDuplicateEmail:
		return "duplicate_email"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is an error tagged with a Kind.
// Message is safe to return to clients; Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates a tagged error without an underlying cause.
// Feature packages use it to declare their sentinel errors.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags cause with kind. The message is what clients will see.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Validation is a shortcut for a KindValidation error with the given message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message for err.
// Errors without a kind never leak their text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "internal server error"
}

// HTTPStatus maps the kind of err to a status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindDuplicateEmail, KindValidation:
		return http.StatusBadRequest
	case KindInvalidCredentials, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
