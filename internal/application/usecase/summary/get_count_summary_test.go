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

func TestGetCountSummaryUseCase_Execute(t *testing.T) {
	loc := jakartaLocation(t)
	ctx := context.Background()

	t.Run("detail has one zero-filled bucket per day of the window", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(1000), CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, loc)},
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(1000), CreatedAt: time.Date(2025, 3, 15, 18, 0, 0, 0, loc)},
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(1000), CreatedAt: time.Date(2025, 3, 13, 9, 0, 0, 0, loc)},
			},
		}
		uc := NewGetCountSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetCountSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period3Days,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Detail) != 3 {
			t.Fatalf("expected 3 detail buckets, got %d", len(output.Detail))
		}

		wantTotals := []int64{1, 0, 2} // Mar 13, Mar 14, Mar 15.
		for i, want := range wantTotals {
			if output.Detail[i].Total != want {
				t.Errorf("bucket %d: expected total %d, got %d", i, want, output.Detail[i].Total)
			}
		}
	})

	t.Run("first detail bucket matches the window start", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetCountSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetCountSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period7Days,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Detail) != 7 {
			t.Fatalf("expected 7 detail buckets, got %d", len(output.Detail))
		}
		if !output.Detail[0].Date.Equal(output.Current.FromDate) {
			t.Errorf("expected first bucket %v, got %v", output.Current.FromDate, output.Detail[0].Date)
		}
		for i := 1; i < len(output.Detail); i++ {
			want := output.Detail[i-1].Date.AddDate(0, 0, 1)
			if !output.Detail[i].Date.Equal(want) {
				t.Errorf("bucket %d: expected date %v, got %v", i, want, output.Detail[i].Date)
			}
		}
	})

	t.Run("detail sums to the current window count", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(500), CreatedAt: time.Date(2025, 3, 15, 8, 0, 0, 0, loc)},
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(500), CreatedAt: time.Date(2025, 3, 12, 8, 0, 0, 0, loc)},
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(500), CreatedAt: time.Date(2025, 3, 10, 8, 0, 0, 0, loc)},
			},
		}
		uc := NewGetCountSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetCountSummaryInput{
			Kind:   entity.KindOutcome,
			Period: Period7Days,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var detailSum int64
		for _, bucket := range output.Detail {
			detailSum += bucket.Total
		}
		if detailSum != output.Current.Total {
			t.Errorf("expected detail sum %d to equal current total %d", detailSum, output.Current.Total)
		}
		if output.Current.Total != 3 {
			t.Errorf("expected current total 3, got %d", output.Current.Total)
		}
	})

	t.Run("rejects today for count summaries", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetCountSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetCountSummaryInput{
			Kind:   entity.KindIncome,
			Period: PeriodToday,
		})
		if !errors.Is(err, domainerror.ErrInvalidCountPeriodType) {
			t.Fatalf("expected ErrInvalidCountPeriodType, got %v", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &fakeSummaryRepository{err: storeErr}
		uc := NewGetCountSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetCountSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period30Days,
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
