package dto

// CreateUserRequest тело POST /users.
type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
}
