package entity

import "time"

// Profile is the one-to-one personal details record attached to a User.
// Nil fields are unset.
type Profile struct {
	ID            string
	UserID        string
	AboutMe       *string
	StreetAddress *string
	City          *string
	State         *string
	ZipCode       *string
	Birthdate     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserSummary is a user joined with its (possibly missing) profile.
type UserSummary struct {
	User    User
	Profile *Profile
}
