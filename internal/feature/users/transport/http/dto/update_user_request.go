package dto

// UpdateUserReq represents the request body for a partial user update.
// Pointer fields distinguish "not provided" from an explicit empty value;
// only provided fields are applied.
type UpdateUserReq struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,intl_phone"`
}
