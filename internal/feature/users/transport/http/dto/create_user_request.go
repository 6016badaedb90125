// Package dto defines data transfer objects for the users HTTP API.
package dto

// CreateUserReq represents the request body for creating a user.
// It uses Gin's binding tags for validation; intl_phone is registered in
// validation.go.
type CreateUserReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,intl_phone"`
}
