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

func jakartaLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	return loc
}

func fixedNow(loc *time.Location) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 15, 14, 30, 0, 0, loc)
	}
}

func TestGetTotalSummaryUseCase_Execute(t *testing.T) {
	loc := jakartaLocation(t)
	ctx := context.Background()

	t.Run("sums current and previous windows independently", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(150000), CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, loc)},
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(50000), CreatedAt: time.Date(2025, 3, 15, 12, 0, 0, 0, loc)},
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(75000), CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, loc)},
				// Outside both windows.
				{Kind: entity.KindIncome, TotalPrice: decimal.NewFromInt(999999), CreatedAt: time.Date(2025, 3, 13, 9, 0, 0, 0, loc)},
				// Wrong kind.
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(30000), CreatedAt: time.Date(2025, 3, 15, 11, 0, 0, 0, loc)},
			},
		}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindIncome,
			Period: PeriodToday,
			Metric: MetricAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Current.Total.Equal(decimal.NewFromInt(200000)) {
			t.Errorf("expected current total 200000, got %s", output.Current.Total)
		}
		if !output.Previous.Total.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("expected previous total 75000, got %s", output.Previous.Total)
		}
		if output.Type != PeriodToday {
			t.Errorf("expected type today, got %s", output.Type)
		}
	})

	t.Run("count metric counts transactions instead of summing", func(t *testing.T) {
		repo := &fakeSummaryRepository{
			transactions: []fakeTransaction{
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(10000), CreatedAt: time.Date(2025, 3, 15, 10, 0, 0, 0, loc)},
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(20000), CreatedAt: time.Date(2025, 3, 15, 11, 0, 0, 0, loc)},
				{Kind: entity.KindOutcome, TotalPrice: decimal.NewFromInt(30000), CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, loc)},
			},
		}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindOutcome,
			Period: PeriodToday,
			Metric: MetricCount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Current.Total.Equal(decimal.NewFromInt(2)) {
			t.Errorf("expected current count 2, got %s", output.Current.Total)
		}
		if !output.Previous.Total.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected previous count 1, got %s", output.Previous.Total)
		}
	})

	t.Run("empty windows yield zero totals", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period7Days,
			Metric: MetricAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Current.Total.IsZero() {
			t.Errorf("expected zero current total, got %s", output.Current.Total)
		}
		if !output.Previous.Total.IsZero() {
			t.Errorf("expected zero previous total, got %s", output.Previous.Total)
		}
	})

	t.Run("output windows match the computed period bounds", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		output, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period30Days,
			Metric: MetricAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantFrom := time.Date(2025, 2, 14, 0, 0, 0, 0, loc)
		if !output.Current.FromDate.Equal(wantFrom) {
			t.Errorf("expected fromDate %v, got %v", wantFrom, output.Current.FromDate)
		}
		if !output.Previous.ToDate.Equal(wantFrom.Add(-time.Second)) {
			t.Errorf("expected previous toDate %v, got %v", wantFrom.Add(-time.Second), output.Previous.ToDate)
		}
	})

	t.Run("rejects 3days for total summaries", func(t *testing.T) {
		repo := &fakeSummaryRepository{}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindIncome,
			Period: Period3Days,
			Metric: MetricAmount,
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriodType) {
			t.Fatalf("expected ErrInvalidPeriodType, got %v", err)
		}
	})

	t.Run("propagates store failures", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		repo := &fakeSummaryRepository{err: storeErr}
		uc := NewGetTotalSummaryUseCase(repo, loc)
		uc.nowFn = fixedNow(loc)

		_, err := uc.Execute(ctx, GetTotalSummaryInput{
			Kind:   entity.KindIncome,
			Period: PeriodToday,
			Metric: MetricAmount,
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
