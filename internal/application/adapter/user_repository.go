package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// UserListParams holds filtering and pagination parameters for listing users.
type UserListParams struct {
	Search string
	Roles  []entity.UserRole // visible roles for the requester
	Page   int
	Limit  int
}

// UserListResult holds a page of users plus pagination totals.
type UserListResult struct {
	Users      []*entity.User
	Total      int64
	TotalPages int
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByUsername retrieves a user by username. Returns ErrUserNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// CountByRole returns the number of users holding the given role.
	CountByRole(ctx context.Context, role entity.UserRole) (int64, error)

	// List returns a page of users matching the params, newest first.
	List(ctx context.Context, params UserListParams) (*UserListResult, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
