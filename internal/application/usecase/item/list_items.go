package item

import (
	"context"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// ListItemsInput represents the input for listing one catalog.
type ListItemsInput struct {
	Kind entity.TransactionKind
}

// ListItemsOutput represents the catalog contents.
type ListItemsOutput struct {
	Items []*entity.Item
}

// ListItemsUseCase lists the items of one catalog.
type ListItemsUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.ItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{itemRepo: itemRepo}
}

// Execute lists the items.
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeInvalidItemKind,
			"kind must be: income or outcome",
			domainerror.ErrInvalidItemKind,
		)
	}

	items, err := uc.itemRepo.ListByKind(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ListItemsOutput{Items: items}, nil
}
