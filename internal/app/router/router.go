// Package router はGinエンジンを組み立て、全エンドポイントを登録します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "onboarding_backend/internal/feature/auth/transport/handler"
	onboardinghandler "onboarding_backend/internal/feature/onboarding/transport/handler"
	profilehandler "onboarding_backend/internal/feature/profile/transport/handler"
	usershandler "onboarding_backend/internal/feature/users/transport/handler"
	"onboarding_backend/internal/platform/http/handler"
	jwtmw "onboarding_backend/internal/platform/jwt"
)

// Handlers は NewRouter が必要とする依存をまとめます。
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Profile    *profilehandler.ProfileHandler
	Onboarding *onboardinghandler.OnboardingHandler
	Users      *usershandler.UsersHandler
	Admin      *usershandler.AdminHandler

	Tokens jwtmw.Validator
	Staff  usershandler.StaffChecker
	Ready  map[string]handler.Check

	// AuthLimit は register/login への試行回数を制限する。nil なら無制限
	AuthLimit handler.Limiter

	// CORSOrigins が空ならCORSミドルウェアを登録しない
	CORSOrigins []string
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()
	if len(h.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins: h.CORSOrigins,
			AllowMethods: []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(h.Ready))

	// 認証不要
	auth := r.Group("/auth")
	{
		throttle := func(c *gin.Context) { c.Next() }
		if h.AuthLimit != nil {
			throttle = handler.RateLimit(h.AuthLimit)
		}
		// 新規ユーザー登録
		auth.POST("/register", throttle, h.Auth.Register)
		// ログイン（JWT 発行）
		auth.POST("/login", throttle, h.Auth.Login)
		// → リクエストヘッダーに JWT が必要になる
		auth.GET("/me", jwtmw.AuthRequired(h.Tokens), h.Auth.Me)
	}

	r.PUT("/profile/:user_id", h.Profile.Update)
	r.GET("/users", h.Users.List)

	r.GET("/admin", h.Admin.Site)
	onboarding := r.Group("/admin/onboarding")
	{
		onboarding.GET("/config", h.Onboarding.List)
		onboarding.PUT("/config", h.Onboarding.BulkUpdate)
		onboarding.PUT("/config/:component", h.Onboarding.Update)
	}

	// スタッフのみ
	staff := r.Group("/admin")
	staff.Use(jwtmw.AuthRequired(h.Tokens), usershandler.RequireStaff(h.Staff))
	{
		staff.GET("/users", h.Admin.ListUsers)
		staff.DELETE("/users/:user_id", h.Admin.DeleteUser)
		staff.POST("/maintenance/backfill-profiles", h.Admin.BackfillProfiles)
	}

	return r
}
