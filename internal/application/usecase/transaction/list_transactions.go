package transaction

import (
	"context"
	"fmt"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions of one
// kind.
type ListTransactionsInput struct {
	Kind   entity.TransactionKind
	Search string
	Page   int
	Limit  int
}

// ListTransactionsOutput represents a page of transactions.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase lists transactions with search and pagination.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute lists the transactions. Search matches the counterparty, whatsapp
// number, item name, and creator; matching is case-insensitive.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	result, err := uc.transactionRepo.List(ctx, adapter.TransactionListParams{
		Kind:   input.Kind,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s transactions: %w", input.Kind, err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}
