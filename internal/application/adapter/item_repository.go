package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// ItemRepository defines the interface for catalog item persistence operations.
type ItemRepository interface {
	// Create persists a new catalog item.
	Create(ctx context.Context, item *entity.Item) error

	// GetByID retrieves an item by ID. Returns ErrItemNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// GetByName retrieves an item by name within one catalog.
	// Returns ErrItemNotFound when absent.
	GetByName(ctx context.Context, kind entity.TransactionKind, name string) (*entity.Item, error)

	// ListByKind returns all items of one catalog, newest first.
	ListByKind(ctx context.Context, kind entity.TransactionKind) ([]*entity.Item, error)

	// Update persists changes to an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// Delete removes an item by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
