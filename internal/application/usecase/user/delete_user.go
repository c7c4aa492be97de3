package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// DeleteUserInput represents the input for deleting a staff account.
type DeleteUserInput struct {
	ActorRole entity.UserRole
	UserID    uuid.UUID
}

// DeleteUserUseCase handles staff account deletion under the role matrix.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute deletes the user.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) error {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !input.ActorRole.CanManage(user.Role) {
		return domainerror.NewUserError(
			domainerror.ErrCodeUserRoleNotAllowed,
			"not allowed to delete this user",
			domainerror.ErrUserRoleNotAllowed,
		)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
