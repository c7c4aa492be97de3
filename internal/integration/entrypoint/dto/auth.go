package dto

import "github.com/hexapixel/backend/internal/domain/entity"

// RegisterSuperAdminRequest is the request body for super admin registration.
type RegisterSuperAdminRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
	ContactNumber string `json:"contactNumber"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest is the request body for a self-service password change.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// AuthResponse is the response for login and registration.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToAuthResponse builds an AuthResponse from a token and user entity.
func ToAuthResponse(token string, user *entity.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User:  ToUserResponse(user),
	}
}
