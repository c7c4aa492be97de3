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

func TestGetDailyChartUseCase_Execute(t *testing.T) {
	loc := jakartaLocation(t)
	ctx := context.Background()

	t.Run("returns one bucket per day ending today", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(40000), CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, loc)},
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(25000), CreatedAt: time.Date(2025, 3, 12, 10, 0, 0, 0, loc)},
			},
		}
		uc := NewGetDailyChartUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetDailyChartInput{Kind: entity.KindIncome, Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Data) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(output.Data))
		}

		wantFirst := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)
		if !output.Data[0].Date.Equal(wantFirst) {
			t.Errorf("expected first bucket %v, got %v", wantFirst, output.Data[0].Date)
		}
		wantLast := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)
		if !output.Data[6].Date.Equal(wantLast) {
			t.Errorf("expected last bucket %v, got %v", wantLast, output.Data[6].Date)
		}
	})

	t.Run("days without transactions carry a zero total", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				// Mid-morning local time lands on the same UTC day, so the
				// store's UTC grouping and the local bucket agree here.
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(12000), CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, loc)},
			},
		}
		uc := NewGetDailyChartUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetDailyChartInput{Kind: entity.KindOutcome, Days: 7})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var nonZero int
		for _, bucket := range output.Data {
			if !bucket.Total.IsZero() {
				nonZero++
				if !bucket.Total.Equal(decimal.NewFromInt(12000)) {
					t.Errorf("expected total 12000, got %s", bucket.Total)
				}
			}
		}
		if nonZero != 1 {
			t.Errorf("expected exactly 1 non-zero bucket, got %d", nonZero)
		}
	})

	t.Run("accepts 14 and 30 day spans", func(t *testing.T) {
		for _, days := range []int{14, 30} {
			repo := &fakeSummaryRepository{}
			uc := NewGetDailyChartUseCase(repo, loc)
			uc.nowFn = fixedNow(loc)

			output, err := uc.Execute(ctx, GetDailyChartInput{Kind: entity.KindIncome, Days: days})
			if err != nil {
				t.Fatalf("days=%d: unexpected error: %v", days, err)
			}
			if len(output.Data) != days {
				t.Errorf("days=%d: expected %d buckets, got %d", days, days, len(output.Data))
			}
		}
	})

	t.Run("rejects an unknown kind before touching the store", func(t *testing.T) {
		storeErr := errors.New("should not be called")
		repo := &fakeSummaryRepository{err: storeErr}
		uc := NewGetDailyChartUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetDailyChartInput{Kind: "transfer", Days: 7})
		if !errors.Is(err, domainerror.ErrInvalidChartKind) {
			t.Fatalf("expected ErrInvalidChartKind, got %v", err)
		}
		if errors.Is(err, storeErr) {
			t.Error("store was queried despite invalid kind")
		}
	})

	t.Run("rejects an unsupported day count", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetDailyChartUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		for _, days := range []int{0, 1, 10, 31} {
			_, err := uc.Execute(ctx, GetDailyChartInput{Kind: entity.KindIncome, Days: days})
			if !errors.Is(err, domainerror.ErrInvalidChartDays) {
				t.Errorf("days=%d: expected ErrInvalidChartDays, got %v", days, err)
			}
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &fakeSummaryRepository{err: storeErr}
		uc := NewGetDailyChartUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetDailyChartInput{Kind: entity.KindIncome, Days: 7})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
