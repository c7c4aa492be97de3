// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user in the system.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleManager    UserRole = "manager"
	RoleEmployee   UserRole = "employee"
)

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleManager || r == RoleEmployee
}

// IsElevated reports whether the role may act on records owned by other users.
func (r UserRole) IsElevated() bool {
	return r == RoleSuperAdmin || r == RoleManager
}

// CanManage reports whether a user with this role may create, update, delete
// or reset the password of a user with the target role. Managers only manage
// employees; super admins manage everyone except other super admins.
func (r UserRole) CanManage(target UserRole) bool {
	switch r {
	case RoleManager:
		return target == RoleEmployee
	case RoleSuperAdmin:
		return target != RoleSuperAdmin
	default:
		return false
	}
}

// User represents an authenticated principal of the bookkeeping system.
type User struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	FullName      string
	Role          UserRole
	ContactNumber string
	PhotoURL      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User entity with a generated ID and timestamps.
func NewUser(username, passwordHash, fullName string, role UserRole, contactNumber, photoURL string) *User {
	now := time.Now().UTC()

	return &User{
		ID:            uuid.New(),
		Username:      username,
		PasswordHash:  passwordHash,
		FullName:      fullName,
		Role:          role,
		ContactNumber: contactNumber,
		PhotoURL:      photoURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
