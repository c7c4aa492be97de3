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

func seedTransaction(repo *fakeTransactionRepository, kind entity.TransactionKind, createdBy uuid.UUID) *entity.Transaction {
	tx := entity.NewTransaction(
		kind,
		decimal.NewFromInt(10000),
		uuid.New(),
		1,
		decimal.NewFromInt(10000),
		"Andi",
		"628111222333",
		"",
		createdBy,
	)
	repo.transactions[tx.ID] = tx
	return tx
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("employee updates own record", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		itemRepo := newFakeItemRepository()
		employee := uuid.New()
		tx := seedTransaction(txRepo, entity.KindIncome, employee)
		uc := NewUpdateTransactionUseCase(txRepo, itemRepo)

		newPrice := decimal.NewFromInt(20000)
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			Kind:      entity.KindIncome,
			ID:        tx.ID,
			ActorID:   employee,
			ActorRole: entity.RoleEmployee,
			Price:     &newPrice,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Transaction.Price.Equal(newPrice) {
			t.Errorf("expected price %s, got %s", newPrice, output.Transaction.Price)
		}
	})

	t.Run("employee cannot update another user's record", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		itemRepo := newFakeItemRepository()
		tx := seedTransaction(txRepo, entity.KindIncome, uuid.New())
		uc := NewUpdateTransactionUseCase(txRepo, itemRepo)

		newPrice := decimal.NewFromInt(20000)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			Kind:      entity.KindIncome,
			ID:        tx.ID,
			ActorID:   uuid.New(),
			ActorRole: entity.RoleEmployee,
			Price:     &newPrice,
		})
		if !errors.Is(err, domainerror.ErrNotAllowedToModify) {
			t.Fatalf("expected ErrNotAllowedToModify, got %v", err)
		}
	})

	t.Run("manager updates any record", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		itemRepo := newFakeItemRepository()
		tx := seedTransaction(txRepo, entity.KindIncome, uuid.New())
		uc := NewUpdateTransactionUseCase(txRepo, itemRepo)

		newName := "Budi"
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			Kind:         entity.KindIncome,
			ID:           tx.ID,
			ActorID:      uuid.New(),
			ActorRole:    entity.RoleManager,
			Counterparty: &newName,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Counterparty != newName {
			t.Errorf("expected counterparty %s, got %s", newName, output.Transaction.Counterparty)
		}
	})

	t.Run("kind mismatch yields not found", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		itemRepo := newFakeItemRepository()
		tx := seedTransaction(txRepo, entity.KindIncome, uuid.New())
		uc := NewUpdateTransactionUseCase(txRepo, itemRepo)

		newPrice := decimal.NewFromInt(20000)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			Kind:      entity.KindOutcome,
			ID:        tx.ID,
			ActorID:   uuid.New(),
			ActorRole: entity.RoleManager,
			Price:     &newPrice,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("employee cannot delete even their own record", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		employee := uuid.New()
		tx := seedTransaction(txRepo, entity.KindIncome, employee)
		uc := NewDeleteTransactionUseCase(txRepo)

		err := uc.Execute(ctx, DeleteTransactionInput{
			Kind:      entity.KindIncome,
			ID:        tx.ID,
			ActorRole: entity.RoleEmployee,
		})
		if !errors.Is(err, domainerror.ErrNotAllowedToDelete) {
			t.Fatalf("expected ErrNotAllowedToDelete, got %v", err)
		}
	})

	t.Run("manager deletes a record", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		tx := seedTransaction(txRepo, entity.KindOutcome, uuid.New())
		uc := NewDeleteTransactionUseCase(txRepo)

		err := uc.Execute(ctx, DeleteTransactionInput{
			Kind:      entity.KindOutcome,
			ID:        tx.ID,
			ActorRole: entity.RoleManager,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(txRepo.transactions) != 0 {
			t.Error("expected transaction to be removed")
		}
	})
}
