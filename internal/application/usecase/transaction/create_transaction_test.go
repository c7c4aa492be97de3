package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()

	newRepos := func(kind entity.TransactionKind) (*fakeTransactionRepository, *fakeItemRepository, *entity.Item) {
		txRepo := newFakeTransactionRepository()
		itemRepo := newFakeItemRepository()
		item := entity.NewItem(kind, "Banner")
		itemRepo.items[item.ID] = item
		return txRepo, itemRepo, item
	}

	t.Run("creates an income record", func(t *testing.T) {
		txRepo, itemRepo, item := newRepos(entity.KindIncome)
		uc := NewCreateTransactionUseCase(txRepo, itemRepo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			Kind:         entity.KindIncome,
			Price:        decimal.NewFromInt(50000),
			ItemID:       item.ID,
			Quantity:     2,
			TotalPrice:   decimal.NewFromInt(100000),
			Counterparty: "Andi",
			Whatsapp:     "628111222333",
			CreatedBy:    creator,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Transaction.ID == uuid.Nil {
			t.Error("expected a generated ID")
		}
		if _, ok := txRepo.transactions[output.Transaction.ID]; !ok {
			t.Error("expected transaction to be persisted")
		}
	})

	t.Run("outcome without a receipt is rejected", func(t *testing.T) {
		txRepo, itemRepo, item := newRepos(entity.KindOutcome)
		uc := NewCreateTransactionUseCase(txRepo, itemRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Kind:         entity.KindOutcome,
			Price:        decimal.NewFromInt(50000),
			ItemID:       item.ID,
			Quantity:     1,
			TotalPrice:   decimal.NewFromInt(50000),
			Counterparty: "Supplier",
			CreatedBy:    creator,
		})
		if !errors.Is(err, domainerror.ErrReceiptRequired) {
			t.Fatalf("expected ErrReceiptRequired, got %v", err)
		}
		if len(txRepo.transactions) != 0 {
			t.Error("expected no transaction to be persisted")
		}
	})

	t.Run("income never stores a receipt", func(t *testing.T) {
		txRepo, itemRepo, item := newRepos(entity.KindIncome)
		uc := NewCreateTransactionUseCase(txRepo, itemRepo)

		output, err := uc.Execute(ctx, CreateTransactionInput{
			Kind:         entity.KindIncome,
			Price:        decimal.NewFromInt(50000),
			ItemID:       item.ID,
			Quantity:     1,
			TotalPrice:   decimal.NewFromInt(50000),
			Counterparty: "Andi",
			ReceiptURL:   "http://example.com/receipt.jpg",
			CreatedBy:    creator,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.ReceiptURL != "" {
			t.Errorf("expected empty receipt URL, got %s", output.Transaction.ReceiptURL)
		}
	})

	t.Run("missing required fields are rejected", func(t *testing.T) {
		txRepo, itemRepo, item := newRepos(entity.KindIncome)
		uc := NewCreateTransactionUseCase(txRepo, itemRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Kind:       entity.KindIncome,
			Price:      decimal.NewFromInt(50000),
			ItemID:     item.ID,
			Quantity:   0,
			TotalPrice: decimal.NewFromInt(50000),
			CreatedBy:  creator,
		})
		if !errors.Is(err, domainerror.ErrMissingTransactionFields) {
			t.Fatalf("expected ErrMissingTransactionFields, got %v", err)
		}
	})

	t.Run("item from the other catalog is rejected", func(t *testing.T) {
		txRepo, itemRepo, item := newRepos(entity.KindOutcome)
		uc := NewCreateTransactionUseCase(txRepo, itemRepo)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			Kind:         entity.KindIncome,
			Price:        decimal.NewFromInt(50000),
			ItemID:       item.ID,
			Quantity:     1,
			TotalPrice:   decimal.NewFromInt(50000),
			Counterparty: "Andi",
			CreatedBy:    creator,
		})
		if !errors.Is(err, domainerror.ErrInvalidItemKind) {
			t.Fatalf("expected ErrInvalidItemKind, got %v", err)
		}
	})
}
