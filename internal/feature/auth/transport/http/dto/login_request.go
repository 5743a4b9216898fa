package dto

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// emailにはユーザー名も指定できるため、メール形式は検証しません。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
