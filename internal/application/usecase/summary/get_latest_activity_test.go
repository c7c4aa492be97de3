package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
)

func TestGetLatestActivityUseCase_Execute(t *testing.T) {
	loc := jakartaLocation(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 15, 8, 0, 0, 0, loc)

	t.Run("returns income rows newest first", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, CustomerName: "Andi", Whatsapp: "6281111", Quantity: 2, TotalPrice: decimal.NewFromInt(1000), CreatedAt: base},
				{Kind: entity.KindIncome, CustomerName: "Budi", Whatsapp: "6282222", Quantity: 1, TotalPrice: decimal.NewFromInt(1000), CreatedAt: base.Add(2 * time.Hour)},
				{Kind: entity.KindOutcome, CustomerName: "Vendor", Whatsapp: "6283333", Quantity: 5, TotalPrice: decimal.NewFromInt(1000), CreatedAt: base.Add(3 * time.Hour)},
			},
		}
		uc := NewGetLatestActivityUseCase(repo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Activities) != 2 {
			t.Fatalf("expected 2 activities, got %d", len(output.Activities))
		}
		if output.Activities[0].CustomerName != "Budi" {
			t.Errorf("expected newest first, got %s", output.Activities[0].CustomerName)
		}
		if output.Activities[1].Quantity != 2 {
			t.Errorf("expected quantity 2, got %d", output.Activities[1].Quantity)
		}
	})

	t.Run("caps the feed at ten rows", func(t *testing.T) {
		txs := make([]fakeTransaction, 0, 15)
		for i := 0; i < 15; i++ {
			txs = append(txs, fakeTransaction{
				Kind:         entity.KindIncome,
				CustomerName: "Customer",
				Quantity:     i,
				TotalPrice:   decimal.NewFromInt(1000),
				CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			})
		}
		repo := &fakeSummaryRepository{transactions: txs}
		uc := NewGetLatestActivityUseCase(repo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Activities) != 10 {
			t.Fatalf("expected 10 activities, got %d", len(output.Activities))
		}
		if output.Activities[0].Quantity != 14 {
			t.Errorf("expected the most recent row first, got quantity %d", output.Activities[0].Quantity)
		}
	})

	t.Run("empty store yields an empty feed", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetLatestActivityUseCase(repo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Activities) != 0 {
			t.Errorf("expected empty feed, got %d rows", len(output.Activities))
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &fakeSummaryRepository{err: storeErr}
		uc := NewGetLatestActivityUseCase(repo)

		_, err := uc.Execute(ctx)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
