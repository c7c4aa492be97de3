package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

func strPtr(s string) *string { return &s }

func TestGetTopItemsUseCase_Execute(t *testing.T) {
	loc := jakartaLocation(t)
	ctx := context.Background()
	today := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	t.Run("ranks items by total descending", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, ItemID: "a", ItemName: strPtr("Banner"), TotalPrice: decimal.NewFromInt(100000), CreatedAt: today},
				{Kind: entity.KindIncome, ItemID: "b", ItemName: strPtr("Sticker"), TotalPrice: decimal.NewFromInt(250000), CreatedAt: today},
				{Kind: entity.KindIncome, ItemID: "a", ItemName: strPtr("Banner"), TotalPrice: decimal.NewFromInt(50000), CreatedAt: today},
			},
			catalog: []CatalogItem{},
		}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(output.Items))
		}
		if output.Items[0].Name != "Sticker" {
			t.Errorf("expected Sticker first, got %s", output.Items[0].Name)
		}
		if !output.Items[0].Total.Equal(decimal.NewFromInt(250000)) {
			t.Errorf("expected total 250000, got %s", output.Items[0].Total)
		}
		if output.Items[1].Name != "Banner" {
			t.Errorf("expected Banner second, got %s", output.Items[1].Name)
		}
		if !output.Items[1].Total.Equal(decimal.NewFromInt(150000)) {
			t.Errorf("expected total 150000, got %s", output.Items[1].Total)
		}
	})

	t.Run("orphaned totals are labeled Unknown Item", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, ItemID: "gone", ItemName: nil, TotalPrice: decimal.NewFromInt(90000), CreatedAt: today},
			},
		}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) == 0 {
			t.Fatal("expected at least one item")
		}
		if output.Items[0].Name != "Unknown Item" {
			t.Errorf("expected Unknown Item, got %s", output.Items[0].Name)
		}
		if !output.Items[0].Total.Equal(decimal.NewFromInt(90000)) {
			t.Errorf("expected orphan total preserved, got %s", output.Items[0].Total)
		}
	})

	t.Run("pads with zero-total catalog items up to six", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, ItemID: "a", ItemName: strPtr("Banner"), TotalPrice: decimal.NewFromInt(100000), CreatedAt: today},
			},
			catalog: []CatalogItem{
				{Name: "Banner"},
				{Name: "Sticker"},
				{Name: "Brochure"},
				{Name: "Business Card"},
				{Name: "Poster"},
				{Name: "Flyer"},
				{Name: "Calendar"},
			},
		}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 6 {
			t.Fatalf("expected 6 items, got %d", len(output.Items))
		}
		if output.Items[0].Name != "Banner" {
			t.Errorf("expected ranked item first, got %s", output.Items[0].Name)
		}
		// Padding follows catalog order and skips the already-ranked item.
		wantPadding := []string{"Sticker", "Brochure", "Business Card", "Poster", "Flyer"}
		for i, want := range wantPadding {
			got := output.Items[i+1]
			if got.Name != want {
				t.Errorf("padding %d: expected %s, got %s", i, want, got.Name)
			}
			if !got.Total.IsZero() {
				t.Errorf("padding %d: expected zero total, got %s", i, got.Total)
			}
		}
	})

	t.Run("never returns more than six items", func(t *testing.T) {
		txs := make([]fakeTransaction, 0, 10)
		names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
		for i, name := range names {
			txs = append(txs, fakeTransaction{
				Kind:       entity.KindIncome,
				ItemID:     name,
				ItemName:   strPtr(name),
				TotalPrice: decimal.NewFromInt(int64((i + 1) * 1000)),
				CreatedAt:  today,
			})
		}
		repo := &fakeSummaryRepository{transactions: txs}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: PeriodToday})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Items) != 6 {
			t.Fatalf("expected 6 items, got %d", len(output.Items))
		}
		if output.Items[0].Name != "J" {
			t.Errorf("expected highest total first, got %s", output.Items[0].Name)
		}
	})

	t.Run("every row carries the window bounds", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, ItemID: "a", ItemName: strPtr("Banner"), TotalPrice: decimal.NewFromInt(1000), CreatedAt: today},
			},
			catalog: []CatalogItem{{Name: "Sticker"}},
		}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: Period7Days})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i, item := range output.Items {
			if !item.FromDate.Equal(output.FromDate) || !item.ToDate.Equal(output.ToDate) {
				t.Errorf("item %d: expected window [%v, %v], got [%v, %v]",
					i, output.FromDate, output.ToDate, item.FromDate, item.ToDate)
			}
		}
	})

	t.Run("empty store with empty catalog yields an empty ranking", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: Period30Days})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Items) != 0 {
			t.Errorf("expected empty ranking, got %d items", len(output.Items))
		}
	})

	t.Run("rejects 3days for rankings", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetTopItemsUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetTopItemsInput{Kind: entity.KindIncome, Period: Period3Days})
		if !errors.Is(err, domainerror.ErrInvalidPeriodType) {
			t.Fatalf("expected ErrInvalidPeriodType, got %v", err)
		}
	})
}
