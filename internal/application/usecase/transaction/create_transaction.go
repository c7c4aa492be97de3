// Package transaction contains income and outcome record use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for recording a transaction.
type CreateTransactionInput struct {
	Kind         entity.TransactionKind
	Price        decimal.Decimal
	ItemID       uuid.UUID
	Quantity     int
	TotalPrice   decimal.Decimal
	Counterparty string
	Whatsapp     string
	ReceiptURL   string // required for outcome
	CreatedBy    uuid.UUID
}

// CreateTransactionOutput represents the created transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles recording income and outcome transactions.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	itemRepo        adapter.ItemRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	itemRepo adapter.ItemRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
	}
}

// Execute records the transaction. Outcome records require a receipt; income
// records never carry one.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	if input.ItemID == uuid.Nil || input.Quantity <= 0 || input.Counterparty == "" ||
		input.Price.IsZero() || input.TotalPrice.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"price, item, quantity, total price, and name are required",
			domainerror.ErrMissingTransactionFields,
		)
	}
	if input.Kind == entity.KindOutcome && input.ReceiptURL == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeReceiptRequired,
			"receipt is required for outcome records",
			domainerror.ErrReceiptRequired,
		)
	}

	item, err := uc.itemRepo.GetByID(ctx, input.ItemID)
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

	receiptURL := input.ReceiptURL
	if input.Kind == entity.KindIncome {
		receiptURL = ""
	}

	transaction := entity.NewTransaction(
		input.Kind,
		input.Price,
		input.ItemID,
		input.Quantity,
		input.TotalPrice,
		input.Counterparty,
		input.Whatsapp,
		receiptURL,
		input.CreatedBy,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
