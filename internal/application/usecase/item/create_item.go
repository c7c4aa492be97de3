// Package item contains catalog item use cases. Income and outcome items live
// in separate catalogs keyed by transaction kind.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// CreateItemInput represents the input for creating a catalog item.
type CreateItemInput struct {
	Kind entity.TransactionKind
	Name string
}

// CreateItemOutput represents the created item.
type CreateItemOutput struct {
	Item *entity.Item
}

// CreateItemUseCase handles catalog item creation.
type CreateItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(itemRepo adapter.ItemRepository) *CreateItemUseCase {
	return &CreateItemUseCase{itemRepo: itemRepo}
}

// Execute creates the item. Names are unique within one catalog; the same
// name may exist in both the income and outcome catalogs.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNameRequired,
			"name is required",
			domainerror.ErrItemNameRequired,
		)
	}
	if !input.Kind.IsValid() {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeInvalidItemKind,
			"kind must be: income or outcome",
			domainerror.ErrInvalidItemKind,
		)
	}

	_, err := uc.itemRepo.GetByName(ctx, input.Kind, input.Name)
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

	item := entity.NewItem(input.Kind, input.Name)

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &CreateItemOutput{Item: item}, nil
}
