package dto

// ListUsersReq represents the query parameters for listing users.
// The filter fields are optional case-insensitive substring matches.
type ListUsersReq struct {
	Skip     int64  `form:"skip,default=0" binding:"min=0"`
	Limit    int64  `form:"limit,default=10" binding:"min=1,max=100"`
	Username string `form:"username"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
}
