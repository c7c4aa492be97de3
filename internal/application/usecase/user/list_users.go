package user

import (
	"context"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// ListUsersInput represents the input for listing staff accounts.
type ListUsersInput struct {
	ActorRole entity.UserRole
	Search    string
	Page      int
	Limit     int
}

// ListUsersOutput represents a page of staff accounts.
type ListUsersOutput struct {
	Users      []*entity.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListUsersUseCase lists staff accounts visible to the caller. Managers see
// employees only; super admins see managers and employees.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute lists the users.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	roles := []entity.UserRole{entity.RoleEmployee}
	if input.ActorRole == entity.RoleSuperAdmin {
		roles = append(roles, entity.RoleManager)
	}

	result, err := uc.userRepo.List(ctx, adapter.UserListParams{
		Search: input.Search,
		Roles:  roles,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{
		Users:      result.Users,
		Total:      result.Total,
		Page:       page,
		Limit:      limit,
		TotalPages: result.TotalPages,
	}, nil
}
