// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 6

// RegisterSuperAdminInput represents the input for the one-time super admin
// registration.
type RegisterSuperAdminInput struct {
	Username      string
	Password      string
	FullName      string
	ContactNumber string
}

// RegisterSuperAdminOutput represents the output of super admin registration.
type RegisterSuperAdminOutput struct {
	Token string
	User  *entity.User
}

// RegisterSuperAdminUseCase handles the bootstrap registration of the single
// super admin account.
type RegisterSuperAdminUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterSuperAdminUseCase creates a new RegisterSuperAdminUseCase instance.
func NewRegisterSuperAdminUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterSuperAdminUseCase {
	return &RegisterSuperAdminUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute registers the super admin. Only one super admin may ever exist; a
// second registration attempt fails regardless of the username.
func (uc *RegisterSuperAdminUseCase) Execute(
	ctx context.Context,
	input RegisterSuperAdminInput,
) (*RegisterSuperAdminOutput, error) {
	if input.Username == "" || input.Password == "" || input.FullName == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"username, password, and name are required",
			domainerror.ErrMissingUserFields,
		)
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePasswordTooShort,
			"password must be at least 6 characters",
			domainerror.ErrPasswordTooShort,
		)
	}

	count, err := uc.userRepo.CountByRole(ctx, entity.RoleSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to check super admin existence: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeSuperAdminRegistered,
			"super admin already registered",
			domainerror.ErrSuperAdminRegistered,
		)
	}

	passwordHash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, passwordHash, input.FullName, entity.RoleSuperAdmin, input.ContactNumber, "")

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create super admin: %w", err)
	}

	token, err := uc.tokenService.Generate(ctx, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &RegisterSuperAdminOutput{Token: token, User: user}, nil
}
