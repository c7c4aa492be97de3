package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// UpdateUserInput represents the input for updating a staff account. Nil
// fields are left unchanged.
type UpdateUserInput struct {
	ActorRole     entity.UserRole
	UserID        uuid.UUID
	Username      *string
	FullName      *string
	Role          *entity.UserRole
	ContactNumber *string
	PhotoURL      *string
}

// UpdateUserOutput represents the updated user.
type UpdateUserOutput struct {
	User *entity.User
}

// UpdateUserUseCase handles staff account updates under the role matrix.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute updates the user. The caller must be allowed to manage both the
// user's current role and, when changing it, the new role.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !input.ActorRole.CanManage(user.Role) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserRoleNotAllowed,
			"not allowed to update this user",
			domainerror.ErrUserRoleNotAllowed,
		)
	}

	if input.Role != nil {
		if *input.Role != entity.RoleManager && *input.Role != entity.RoleEmployee {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeInvalidUserRole,
				"role must be: manager or employee",
				domainerror.ErrInvalidUserRole,
			)
		}
		if !input.ActorRole.CanManage(*input.Role) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserRoleNotAllowed,
				"not allowed to assign this role",
				domainerror.ErrUserRoleNotAllowed,
			)
		}
		user.Role = *input.Role
	}

	if input.Username != nil && *input.Username != user.Username {
		_, err := uc.userRepo.GetByUsername(ctx, *input.Username)
		if err == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUsernameTaken,
				"username already exists",
				domainerror.ErrUsernameTaken,
			)
		}
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		user.Username = *input.Username
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.ContactNumber != nil {
		user.ContactNumber = *input.ContactNumber
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateUserOutput{User: user}, nil
}
