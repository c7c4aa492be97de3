package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	Kind         entity.TransactionKind
	ID           uuid.UUID
	ActorID      uuid.UUID
	ActorRole    entity.UserRole
	Price        *decimal.Decimal
	ItemID       *uuid.UUID
	Quantity     *int
	TotalPrice   *decimal.Decimal
	Counterparty *string
	Whatsapp     *string
	ReceiptURL   *string
}

// UpdateTransactionOutput represents the updated transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction updates. Employees may only
// modify records they created; managers and the super admin may modify any.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	itemRepo        adapter.ItemRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	itemRepo adapter.ItemRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
	}
}

// Execute updates the transaction.
func (uc *UpdateTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateTransactionInput,
) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.GetByID(ctx, input.Kind, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s transaction: %w", input.Kind, err)
	}
	transaction := existing.Transaction

	if !input.ActorRole.IsElevated() && transaction.CreatedBy != input.ActorID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAllowedToModify,
			"not allowed to modify this record",
			domainerror.ErrNotAllowedToModify,
		)
	}

	if input.ItemID != nil && *input.ItemID != transaction.ItemID {
		item, err := uc.itemRepo.GetByID(ctx, *input.ItemID)
		if err != nil {
			return nil, fmt.Errorf("failed to get item: %w", err)
		}
		if item.Kind != input.Kind {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeInvalidItemKind,
				"item belongs to a different catalog",
				domainerror.ErrInvalidItemKind,
			)
		}
		transaction.ItemID = *input.ItemID
	}

	if input.Price != nil {
		transaction.Price = *input.Price
	}
	if input.Quantity != nil {
		transaction.Quantity = *input.Quantity
	}
	if input.TotalPrice != nil {
		transaction.TotalPrice = *input.TotalPrice
	}
	if input.Counterparty != nil {
		transaction.Counterparty = *input.Counterparty
	}
	if input.Whatsapp != nil {
		transaction.Whatsapp = *input.Whatsapp
	}
	if input.ReceiptURL != nil && input.Kind == entity.KindOutcome {
		transaction.ReceiptURL = *input.ReceiptURL
	}
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update %s transaction: %w", input.Kind, err)
	}

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
