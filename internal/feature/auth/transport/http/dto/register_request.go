// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /auth/register endpoint.
// It uses Gin's binding tags for validation (required, email format, username length).
// Password length is checked by the usecase so the error message reaches the client.
type RegisterReq struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Username string `json:"username" binding:"required,max=150"`
	Password string `json:"password" binding:"required"`
}
