// Package entity defines the domain entities shared by the auth, profile,
// onboarding and users features.
package entity

import "time"

// User represents a registered account.
type User struct {
	// ID is a UUID string.
	ID string

	// Email is unique across all users and is the primary login identifier.
	Email string

	// Username is unique and may be used instead of the email to log in.
	Username string

	// Password is the bcrypt hash. Never a plaintext password.
	Password string

	IsActive bool
	IsStaff  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
