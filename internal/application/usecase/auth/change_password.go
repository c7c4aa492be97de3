package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// ChangePasswordInput represents the input for a self-service password change.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// ChangePasswordUseCase handles password change for the authenticated user.
type ChangePasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewChangePasswordUseCase creates a new ChangePasswordUseCase instance.
func NewChangePasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute changes the user's password after verifying the current one.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	if len(input.NewPassword) < minPasswordLength {
		return domainerror.NewAuthError(
			domainerror.ErrCodePasswordTooShort,
			"password must be at least 6 characters",
			domainerror.ErrPasswordTooShort,
		)
	}

	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := uc.passwordService.Compare(user.PasswordHash, input.OldPassword); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeOldPasswordIncorrect,
			"old password is incorrect",
			domainerror.ErrOldPasswordIncorrect,
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
