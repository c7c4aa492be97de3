package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// GetTransactionInput represents the input for fetching one transaction.
type GetTransactionInput struct {
	Kind entity.TransactionKind
	ID   uuid.UUID
}

// GetTransactionOutput represents the fetched transaction.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// GetTransactionUseCase fetches a transaction by kind and ID.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute fetches the transaction.
func (uc *GetTransactionUseCase) Execute(
	ctx context.Context,
	input GetTransactionInput,
) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s transaction: %w", input.Kind, err)
	}
	return &GetTransactionOutput{Transaction: transaction}, nil
}
