// Package adapters provides the GORM repository for user listing and administration.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/users/usecase"
	"onboarding_backend/internal/platform/db/model"
)

type usersGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*usersGorm)(nil)

// NewUsersRepository creates a new instance of usersGorm.
func NewUsersRepository(db *gorm.DB) *usersGorm {
	return &usersGorm{db: db}
}

// summaryRow is one row of the users LEFT JOIN user_profiles query.
type summaryRow struct {
	ID        string
	Email     string
	Username  string
	IsActive  bool
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time

	ProfileID        *string
	AboutMe          *string
	StreetAddress    *string
	City             *string
	State            *string
	ZipCode          *string
	Birthdate        *time.Time
	ProfileCreatedAt *time.Time
	ProfileUpdatedAt *time.Time
}

func (r summaryRow) toEntity() entity.UserSummary {
	s := entity.UserSummary{User: entity.User{
		ID:        r.ID,
		Email:     r.Email,
		Username:  r.Username,
		IsActive:  r.IsActive,
		IsStaff:   r.IsStaff,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}}
	if r.ProfileID == nil {
		return s
	}
	p := &entity.Profile{
		ID:            *r.ProfileID,
		UserID:        r.ID,
		AboutMe:       r.AboutMe,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		Birthdate:     r.Birthdate,
	}
	if r.ProfileCreatedAt != nil {
		p.CreatedAt = *r.ProfileCreatedAt
	}
	if r.ProfileUpdatedAt != nil {
		p.UpdatedAt = *r.ProfileUpdatedAt
	}
	s.Profile = p
	return s
}

// ListWithProfiles reads users and profiles in one query. It never inserts.
func (r *usersGorm) ListWithProfiles(ctx context.Context) ([]entity.UserSummary, error) {
	var rows []summaryRow
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id, u.email, u.username, u.is_active, u.is_staff, u.created_at, u.updated_at,
			p.id AS profile_id, p.about_me, p.street_address, p.city, p.state, p.zip_code, p.birthdate,
			p.created_at AS profile_created_at, p.updated_at AS profile_updated_at`).
		Joins("LEFT JOIN user_profiles AS p ON p.user_id = u.id").
		Order("u.created_at ASC").
		Order("u.email ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]entity.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEntity())
	}
	return out, nil
}

// CreateMissingProfiles inserts empty profiles in one transaction.
func (r *usersGorm) CreateMissingProfiles(ctx context.Context) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Table("users AS u").
			Joins("LEFT JOIN user_profiles AS p ON p.user_id = u.id").
			Where("p.id IS NULL").
			Pluck("u.id", &ids).Error; err != nil {
			return fmt.Errorf("find users without profile: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		profiles := make([]model.Profile, 0, len(ids))
		for _, id := range ids {
			profiles = append(profiles, model.Profile{ID: uuid.NewString(), UserID: id})
		}
		if err := tx.CreateInBatches(&profiles, 100).Error; err != nil {
			return fmt.Errorf("create profiles: %w", err)
		}
		created = len(profiles)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// Search filters on LOWER(email) and LOWER(username) so it behaves the same on
// PostgreSQL, where LIKE is case-sensitive, and SQLite.
func (r *usersGorm) Search(ctx context.Context, query string) ([]entity.User, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if query != "" {
		pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
		q = q.Where(`LOWER(email) LIKE ? ESCAPE '\' OR LOWER(username) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	var rows []model.User
	if err := q.Order("email ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	out := make([]entity.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToEntity())
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *usersGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findBy(ctx, "id = ?", id)
}

func (r *usersGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(ctx, "email = ?", email)
}

func (r *usersGorm) findBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return u.ToEntity(), nil
}

// Delete removes the profile explicitly so SQLite connections opened without
// foreign keys behave like PostgreSQL's ON DELETE CASCADE.
func (r *usersGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&model.Profile{}).Error; err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return fmt.Errorf("delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}

func (r *usersGorm) SetStaff(ctx context.Context, id string, staff bool) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_staff", staff)
	if result.Error != nil {
		return fmt.Errorf("set staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
