package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for an administrative password reset.
type ResetPasswordInput struct {
	ActorRole   entity.UserRole
	UserID      uuid.UUID
	NewPassword string
}

// ResetPasswordUseCase handles administrative password resets. Unlike a
// self-service change, the old password is not required.
type ResetPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute resets the user's password.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if len(input.NewPassword) < 6 {
		return domainerror.NewAuthError(
			domainerror.ErrCodePasswordTooShort,
			"password must be at least 6 characters",
			domainerror.ErrPasswordTooShort,
		)
	}

	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !input.ActorRole.CanManage(user.Role) {
		return domainerror.NewUserError(
			domainerror.ErrCodeUserRoleNotAllowed,
			"not allowed to reset this user's password",
			domainerror.ErrUserRoleNotAllowed,
		)
	}

	passwordHash, err := uc.passwordService.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
