package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database. Income and outcome
// catalogs share the table, split by the kind column.
type ItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind      string    `gorm:"type:varchar(10);not null;index;uniqueIndex:idx_items_kind_name"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_items_kind_name"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// ToEntity converts an ItemModel to a domain Item entity.
func (m *ItemModel) ToEntity() *entity.Item {
	return &entity.Item{
		ID:        m.ID,
		Kind:      entity.TransactionKind(m.Kind),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	return &ItemModel{
		ID:        item.ID,
		Kind:      string(item.Kind),
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
