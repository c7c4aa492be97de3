package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	Kind      entity.TransactionKind
	ID        uuid.UUID
	ActorRole entity.UserRole
}

// DeleteTransactionUseCase handles transaction deletion. Only managers and
// the super admin may delete records; employees cannot, even their own.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute deletes the transaction.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if !input.ActorRole.IsElevated() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotAllowedToDelete,
			"not allowed to delete records",
			domainerror.ErrNotAllowedToDelete,
		)
	}

	existing, err := uc.transactionRepo.GetByID(ctx, input.Kind, input.ID)
	if err != nil {
		return fmt.Errorf("failed to get %s transaction: %w", input.Kind, err)
	}

	if err := uc.transactionRepo.Delete(ctx, input.Kind, existing.Transaction.ID); err != nil {
		return fmt.Errorf("failed to delete %s transaction: %w", input.Kind, err)
	}
	return nil
}
