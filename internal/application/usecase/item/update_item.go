package item

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

// UpdateItemInput represents the input for renaming a catalog item.
type UpdateItemInput struct {
	ItemID uuid.UUID
	Name   string
}

// UpdateItemOutput represents the updated item.
type UpdateItemOutput struct {
	Item *entity.Item
}

// UpdateItemUseCase handles catalog item renames.
type UpdateItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(itemRepo adapter.ItemRepository) *UpdateItemUseCase {
	return &UpdateItemUseCase{itemRepo: itemRepo}
}

// Execute renames the item.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNameRequired,
			"name is required",
			domainerror.ErrItemNameRequired,
		)
	}

	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	if input.Name != item.Name {
		_, err := uc.itemRepo.GetByName(ctx, item.Kind, input.Name)
		if err == nil {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNameTaken,
				"item name already exists",
				domainerror.ErrItemNameTaken,
			)
		}
		if !errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, fmt.Errorf("failed to check item name: %w", err)
		}
	}

	item.Name = input.Name
	item.UpdatedAt = time.Now().UTC()

	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return &UpdateItemOutput{Item: item}, nil
}
