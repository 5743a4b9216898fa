// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/auth/usecase"
	"onboarding_backend/internal/platform/db"
	"onboarding_backend/internal/platform/db/model"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(ctx, "email = ?", email)
}

// FindByUsername はユーザー名でユーザーを取得します。
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findBy(ctx, "username = ?", username)
}

// FindByID はIDでユーザーを取得します。
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findBy(ctx, "id = ?", id)
}

func (r *userGorm) findBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return u.ToEntity(), nil
}

func (r *userGorm) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userGorm) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *userGorm) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithProfile はユーザーと空のプロフィールを1トランザクションで作成します。
// IDが空なら採番し、作成後のIDとタイムスタンプをuに反映します。
func (r *userGorm) CreateWithProfile(ctx context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m := model.UserFromEntity(u)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Create(&model.Profile{ID: uuid.NewString(), UserID: m.ID}).Error
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return r.conflict(ctx, u.Email, err)
		}
		return fmt.Errorf("create user: %w", err)
	}

	*u = *m.ToEntity()
	return nil
}

// conflict は一意制約違反の原因となった列を判定します。
func (r *userGorm) conflict(ctx context.Context, email string, cause error) error {
	taken, err := r.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("create user: %w", cause)
	}
	if taken {
		return usecase.ErrDuplicateEmail
	}
	return usecase.ErrUsernameTaken
}

// GetOrCreateProfile はプロフィールを取得し、無ければ作成します。
func (r *userGorm) GetOrCreateProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := model.EnsureProfile(r.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return p.ToEntity(), nil
}
