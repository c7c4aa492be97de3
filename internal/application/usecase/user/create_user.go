// Package user contains user management use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// CreateUserInput represents the input for creating a staff account.
type CreateUserInput struct {
	ActorRole     entity.UserRole // role of the authenticated caller
	Username      string
	Password      string
	FullName      string
	Role          entity.UserRole
	ContactNumber string
	PhotoURL      string
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *entity.User
}

// CreateUserUseCase handles staff account creation. Managers may only create
// employees; super admins may create managers and employees.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute creates the user.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if input.Username == "" || input.Password == "" || input.FullName == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"username, password, and name are required",
			domainerror.ErrMissingUserFields,
		)
	}
	if input.Role != entity.RoleManager && input.Role != entity.RoleEmployee {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeInvalidUserRole,
			"role must be: manager or employee",
			domainerror.ErrInvalidUserRole,
		)
	}
	if !input.ActorRole.CanManage(input.Role) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserRoleNotAllowed,
			"not allowed to create a user with this role",
			domainerror.ErrUserRoleNotAllowed,
		)
	}

	_, err := uc.userRepo.GetByUsername(ctx, input.Username)
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

	passwordHash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, passwordHash, input.FullName, input.Role, input.ContactNumber, input.PhotoURL)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &CreateUserOutput{User: user}, nil
}
