// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"onboarding_backend/internal/domain/entity"
)

// UserRowRes is one element of GET /users.
type UserRowRes struct {
	ID            string              `json:"id"`
	Email         string              `json:"email"`
	Username      string              `json:"username"`
	AboutMe       *string             `json:"about_me"`
	StreetAddress *string             `json:"street_address"`
	City          *string             `json:"city"`
	State         *string             `json:"state"`
	ZipCode       *string             `json:"zip_code"`
	Birthdate     *openapi_types.Date `json:"birthdate"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewUserRows converts summaries; a missing profile yields null profile fields.
func NewUserRows(users []entity.UserSummary) []UserRowRes {
	out := make([]UserRowRes, 0, len(users))
	for _, s := range users {
		row := UserRowRes{
			ID:        s.User.ID,
			Email:     s.User.Email,
			Username:  s.User.Username,
			CreatedAt: s.User.CreatedAt,
		}
		if p := s.Profile; p != nil {
			row.AboutMe = p.AboutMe
			row.StreetAddress = p.StreetAddress
			row.City = p.City
			row.State = p.State
			row.ZipCode = p.ZipCode
			if p.Birthdate != nil {
				row.Birthdate = &openapi_types.Date{Time: *p.Birthdate}
			}
		}
		out = append(out, row)
	}
	return out
}

// AdminUserRes is one element of GET /admin/users.
type AdminUserRes struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	IsActive bool   `json:"is_active"`
}

// NewAdminUsers converts users for the admin list.
func NewAdminUsers(users []entity.User) []AdminUserRes {
	out := make([]AdminUserRes, 0, len(users))
	for _, u := range users {
		out = append(out, AdminUserRes{
			ID:       u.ID,
			Email:    u.Email,
			Username: u.Username,
			IsStaff:  u.IsStaff,
			IsActive: u.IsActive,
		})
	}
	return out
}

// BackfillRes is returned by the profile backfill.
type BackfillRes struct {
	Created int `json:"created"`
}

// SiteRes describes the admin site.
type SiteRes struct {
	SiteHeader string `json:"site_header"`
	SiteTitle  string `json:"site_title"`
	IndexTitle string `json:"index_title"`
	SiteURL    string `json:"site_url"`
}
