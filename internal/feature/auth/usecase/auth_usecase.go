package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/shared/apperr"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyHash はユーザーが存在しない場合の比較対象です。
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByEmail はメールアドレスに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername はユーザー名に一致するユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID はIDに一致するユーザーを取得します。
	FindByID(ctx context.Context, id string) (*entity.User, error)

	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	// CreateWithProfile はユーザーと空のプロフィールを1トランザクションで作成します。
	// 一意制約違反はErrDuplicateEmailまたはErrUsernameTakenになります。
	CreateWithProfile(ctx context.Context, user *entity.User) error

	// GetOrCreateProfile はプロフィールを取得し、無ければ作成します。
	GetOrCreateProfile(ctx context.Context, userID string) (*entity.Profile, error)
}

// TokenIssuer はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthUsecase は認証ビジネスロジックを実装します。
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase はAuthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// NormalizeEmail trims the address and lowercases its domain part.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + strings.ToLower(email[at:])
}

// Register はユーザーとプロフィールを作成し、トークンを発行します。
func (u *AuthUsecase) Register(ctx context.Context, email, username, password string) (*entity.User, string, error) {
	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" {
		return nil, "", apperr.Validation("email and username are required")
	}
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := u.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, "", ErrDuplicateEmail
	}
	exists, err = u.users.UsernameExists(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		IsActive: true,
	}
	// 事前チェック後の競合は一意インデックスで検出される
	if err := u.users.CreateWithProfile(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login はメールアドレスまたはユーザー名で認証し、トークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *AuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	user, err := u.lookup(ctx, identifier)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if user == nil || compareErr != nil || !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// lookup はメールアドレス、次にユーザー名で検索します。
func (u *AuthUsecase) lookup(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(identifier))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	return u.users.FindByUsername(ctx, strings.TrimSpace(identifier))
}

// CurrentUser はトークンのユーザーとそのプロフィールを返します。
// プロフィールが無ければ作成します。
func (u *AuthUsecase) CurrentUser(ctx context.Context, userID string) (*entity.User, *entity.Profile, error) {
	user, err := u.users.FindByID(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil, ErrUnauthorized
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if !user.IsActive {
		return nil, nil, ErrUnauthorized
	}

	profile, err := u.users.GetOrCreateProfile(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("get profile: %w", err)
	}
	return user, profile, nil
}
