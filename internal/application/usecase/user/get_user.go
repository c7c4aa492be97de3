package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// GetUserInput represents the input for fetching a single user.
type GetUserInput struct {
	UserID uuid.UUID
}

// GetUserOutput represents the fetched user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase fetches a user by ID.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute fetches the user.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &GetUserOutput{User: user}, nil
}
