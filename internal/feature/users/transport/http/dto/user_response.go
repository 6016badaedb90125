package dto

import (
	"scene_backend/internal/feature/users/domain/entity"
)

// timeLayout is the fixed human-readable timestamp format used in responses.
const timeLayout = "2006-01-02 15:04:05"

// UserResponse represents a user in the API response.
// The password hash is never part of any response shape.
type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	IsActive   bool   `json:"is_active"`
	CreateTime string `json:"create_time"`
	UpdateTime string `json:"update_time"`
}

// UserResponseFromEntity maps a user entity to its external response shape.
func UserResponseFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		Email:      u.Email,
		Phone:      u.Phone,
		IsActive:   u.IsActive,
		CreateTime: u.CreateTime.Format(timeLayout),
		UpdateTime: u.UpdateTime.Format(timeLayout),
	}
}
