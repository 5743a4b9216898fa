package dto

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"onboarding_backend/internal/domain/entity"
)

// UserRes is the public view of a user. The password hash is never exposed.
type UserRes struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AuthRes is returned by register and login.
type AuthRes struct {
	User  UserRes `json:"user"`
	Token string  `json:"token"`
}

// ProfileRes mirrors the profile columns; unset fields are null.
type ProfileRes struct {
	AboutMe       *string             `json:"about_me"`
	StreetAddress *string             `json:"street_address"`
	City          *string             `json:"city"`
	State         *string             `json:"state"`
	ZipCode       *string             `json:"zip_code"`
	Birthdate     *openapi_types.Date `json:"birthdate"`
}

// MeRes is returned by /auth/me.
type MeRes struct {
	User    UserRes    `json:"user"`
	Profile ProfileRes `json:"profile"`
}

// NewUserRes converts a user entity.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Email: u.Email, Username: u.Username}
}

// NewProfileRes converts a profile entity. A nil profile yields all-null fields.
func NewProfileRes(p *entity.Profile) ProfileRes {
	if p == nil {
		return ProfileRes{}
	}
	res := ProfileRes{
		AboutMe:       p.AboutMe,
		StreetAddress: p.StreetAddress,
		City:          p.City,
		State:         p.State,
		ZipCode:       p.ZipCode,
	}
	if p.Birthdate != nil {
		res.Birthdate = &openapi_types.Date{Time: *p.Birthdate}
	}
	return res
}
