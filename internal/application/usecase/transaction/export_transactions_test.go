package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

func TestExportTransactionsUseCase_Execute(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	seed := func(repo *fakeTransactionRepository, createdAt time.Time) {
		tx := entity.NewTransaction(
			entity.KindIncome,
			decimal.NewFromInt(10000),
			uuid.New(),
			1,
			decimal.NewFromInt(10000),
			"Andi",
			"",
			"",
			uuid.New(),
		)
		tx.CreatedAt = createdAt
		repo.transactions[tx.ID] = tx
	}

	t.Run("current month export covers the running month only", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		seed(txRepo, time.Date(2025, 3, 1, 0, 0, 0, 0, loc))
		seed(txRepo, time.Date(2025, 3, 14, 23, 59, 0, 0, loc))
		seed(txRepo, time.Date(2025, 2, 28, 12, 0, 0, 0, loc))
		formatter := &fakeExportFormatter{}
		uc := NewExportTransactionsUseCase(txRepo, formatter, loc)
		uc.nowFn = func() time.Time { return now }

		output, err := uc.Execute(ctx, ExportTransactionsInput{
			Kind:  entity.KindIncome,
			Month: ExportCurrentMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if formatter.lastRowCount != 2 {
			t.Errorf("expected 2 exported rows, got %d", formatter.lastRowCount)
		}
		if output.Filename != "income-log-2025-03.xlsx" {
			t.Errorf("unexpected filename: %s", output.Filename)
		}
		if formatter.lastSheetName != "income March 2025" {
			t.Errorf("unexpected sheet name: %s", formatter.lastSheetName)
		}
	})

	t.Run("previous month export shifts one month back", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		seed(txRepo, time.Date(2025, 2, 28, 12, 0, 0, 0, loc))
		seed(txRepo, time.Date(2025, 3, 1, 12, 0, 0, 0, loc))
		formatter := &fakeExportFormatter{}
		uc := NewExportTransactionsUseCase(txRepo, formatter, loc)
		uc.nowFn = func() time.Time { return now }

		output, err := uc.Execute(ctx, ExportTransactionsInput{
			Kind:  entity.KindIncome,
			Month: ExportPreviousMonth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if formatter.lastRowCount != 1 {
			t.Errorf("expected 1 exported row, got %d", formatter.lastRowCount)
		}
		if output.Filename != "income-log-2025-02.xlsx" {
			t.Errorf("unexpected filename: %s", output.Filename)
		}
	})

	t.Run("unknown month token is rejected", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		formatter := &fakeExportFormatter{}
		uc := NewExportTransactionsUseCase(txRepo, formatter, loc)
		uc.nowFn = func() time.Time { return now }

		_, err := uc.Execute(ctx, ExportTransactionsInput{
			Kind:  entity.KindIncome,
			Month: ExportMonth("lastYear"),
		})
		if !errors.Is(err, domainerror.ErrInvalidExportMonth) {
			t.Fatalf("expected ErrInvalidExportMonth, got %v", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		txRepo := newFakeTransactionRepository()
		storeErr := errors.New("connection refused")
		txRepo.listRangeErr = storeErr
		formatter := &fakeExportFormatter{}
		uc := NewExportTransactionsUseCase(txRepo, formatter, loc)
		uc.nowFn = func() time.Time { return now }

		_, err := uc.Execute(ctx, ExportTransactionsInput{
			Kind:  entity.KindIncome,
			Month: ExportCurrentMonth,
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
