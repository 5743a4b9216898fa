// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"onboarding_backend/internal/domain/entity"
	"onboarding_backend/internal/feature/auth/transport/http/dto"
	"onboarding_backend/internal/platform/http/respond"
	jwtmw "onboarding_backend/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、トークンを返します。
	Register(ctx context.Context, email, username, password string) (*entity.User, string, error)
	// Login はメールアドレスまたはユーザー名で認証し、トークンを返します。
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	// CurrentUser はトークンのユーザーとプロフィールを返します。
	CurrentUser(ctx context.Context, userID string) (*entity.User, *entity.Profile, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー、メール重複時は400を返却
// - 成功時はユーザーとトークン付きで201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		respond.Error(c, err)
		return
	}
	slog.Info("user registration successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{User: dto.NewUserRes(user), Token: token})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, err)
		return
	}
	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、失敗理由は区別しない
		respond.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{User: dto.NewUserRes(user), Token: token})
}

// Me は認証済みユーザーとプロフィールを返します。
// AuthRequiredミドルウェアの後段に配置します。
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFrom(c)
	if !ok {
		respond.Message(c, http.StatusUnauthorized, "No valid token provided")
		return
	}
	user, profile, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MeRes{User: dto.NewUserRes(user), Profile: dto.NewProfileRes(profile)})
}
