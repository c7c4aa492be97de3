package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item represents a catalog item that transactions reference. Income and
// outcome transactions use separate catalogs, distinguished by Kind.
type Item struct {
	ID        uuid.UUID
	Kind      TransactionKind
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewItem creates a new Item entity with a generated ID and timestamps.
func NewItem(kind TransactionKind, name string) *Item {
	now := time.Now().UTC()

	return &Item{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
