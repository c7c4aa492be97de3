package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
)

// DeleteItemInput represents the input for deleting a catalog item.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

// DeleteItemUseCase handles catalog item deletion. Transactions referencing a
// deleted item are kept; rankings report them under the unknown item label.
type DeleteItemUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(itemRepo adapter.ItemRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{itemRepo: itemRepo}
}

// Execute deletes the item.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	if err := uc.itemRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
