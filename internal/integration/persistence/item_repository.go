package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/persistence/model"
)

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create persists a new catalog item.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	if err := r.db.WithContext(ctx).Create(itemModel).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// GetByID retrieves an item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemModel model.ItemModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNotFound,
				"item not found",
				domainerror.ErrItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return itemModel.ToEntity(), nil
}

// GetByName retrieves an item by name within one catalog.
func (r *itemRepository) GetByName(ctx context.Context, kind entity.TransactionKind, name string) (*entity.Item, error) {
	var itemModel model.ItemModel
	err := r.db.WithContext(ctx).
		Where("kind = ? AND name = ?", string(kind), name).
		First(&itemModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNotFound,
				"item not found",
				domainerror.ErrItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return itemModel.ToEntity(), nil
}

// ListByKind returns all items of one catalog, newest first.
func (r *itemRepository) ListByKind(ctx context.Context, kind entity.TransactionKind) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("created_at DESC").
		Find(&itemModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*entity.Item, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items, nil
}

// Update persists changes to an existing item.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	if err := r.db.WithContext(ctx).Save(itemModel).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}

// Delete removes an item by ID. Transactions referencing the item are kept.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
