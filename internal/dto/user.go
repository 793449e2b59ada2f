package dto

import (
	"time"

	"github.com/SscSPs/slt_feedback_app/internal/core/domain"
)

// RegisterUserRequest is the body of POST /users/register and POST /admin/addUser.
// Blank fields are rejected by the service so that the response message is uniform.
type RegisterUserRequest struct {
	FullName string `json:"fullname" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password" example:"s3cret!"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName *string `json:"fullname,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Page  int `form:"page" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

type UserResponse struct {
	UserID    string    `json:"userID"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      []string  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse strips credentials and reset state from a domain user.
func ToUserResponse(user *domain.User) UserResponse {
	roles := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		roles[i] = string(r)
	}
	return UserResponse{
		UserID:    user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      roles,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.LastUpdatedAt,
	}
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationMeta `json:"pagination"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User, meta PaginationMeta) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users:      userResponses,
		Pagination: meta,
	}
}
