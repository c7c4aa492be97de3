package dto

import (
	"time"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// CreateUserRequest is the request body for creating a staff account. The
// photo arrives as a separate multipart file.
type CreateUserRequest struct {
	Username      string `form:"username" binding:"required"`
	Password      string `form:"password" binding:"required"`
	FullName      string `form:"fullName" binding:"required"`
	Role          string `form:"role" binding:"required"`
	ContactNumber string `form:"contactNumber"`
}

// UpdateUserRequest is the request body for updating a staff account.
type UpdateUserRequest struct {
	Username      *string `form:"username"`
	FullName      *string `form:"fullName"`
	Role          *string `form:"role"`
	ContactNumber *string `form:"contactNumber"`
}

// ResetPasswordRequest is the request body for an administrative password
// reset.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// UserResponse is the API shape of a user. The password hash never leaves the
// server.
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	FullName      string    `json:"fullName"`
	Role          string    `json:"role"`
	ContactNumber string    `json:"contactNumber"`
	PhotoURL      string    `json:"photoUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserListResponse is a page of users.
type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// ToUserResponse converts a user entity to its API shape.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		FullName:      user.FullName,
		Role:          string(user.Role),
		ContactNumber: user.ContactNumber,
		PhotoURL:      user.PhotoURL,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// ToUserListResponse converts a page of user entities to its API shape.
func ToUserListResponse(users []*entity.User, page, limit int, total int64, totalPages int) UserListResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return UserListResponse{
		Users: responses,
		Pagination: Pagination{
			Page:      page,
			Limit:     limit,
			Total:     total,
			TotalPage: totalPages,
		},
	}
}
