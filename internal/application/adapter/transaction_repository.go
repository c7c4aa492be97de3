package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// TransactionListParams holds filtering and pagination parameters for listing
// transactions of one kind.
type TransactionListParams struct {
	Kind   entity.TransactionKind
	Search string // matches counterparty, whatsapp, item name, creator name/username
	Page   int
	Limit  int
}

// TransactionRepository defines the interface for transaction persistence
// operations. Summary aggregations live on the summary repository instead.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction of the given kind by ID with references
	// resolved. Returns ErrTransactionNotFound when absent.
	GetByID(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) (*entity.TransactionWithRefs, error)

	// List returns a page of transactions with references resolved, newest first.
	List(ctx context.Context, params TransactionListParams) (*entity.TransactionListResult, error)

	// ListRange returns all transactions of one kind created within
	// [from, to], ascending by creation time, with references resolved.
	ListRange(ctx context.Context, kind entity.TransactionKind, from, to time.Time) ([]*entity.TransactionWithRefs, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction of the given kind by ID.
	Delete(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) error
}
