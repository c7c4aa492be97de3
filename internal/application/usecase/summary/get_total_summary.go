package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// Metric selects which aggregate a total summary computes.
type Metric string

const (
	// MetricAmount sums the monetary total price.
	MetricAmount Metric = "amount"
	// MetricCount counts matching transactions.
	MetricCount Metric = "count"
)

// GetTotalSummaryInput represents the input for a period comparison summary.
type GetTotalSummaryInput struct {
	Kind   entity.TransactionKind
	Period PeriodType
	Metric Metric
}

// PeriodTotal is one window's aggregate with its bounds.
type PeriodTotal struct {
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
	Total    decimal.Decimal `json:"total"`
}

// GetTotalSummaryOutput represents the current-vs-previous comparison.
type GetTotalSummaryOutput struct {
	Type     PeriodType  `json:"type"`
	Current  PeriodTotal `json:"current"`
	Previous PeriodTotal `json:"previous"`
}

// GetTotalSummaryUseCase computes a current-vs-previous window aggregate for
// one transaction kind.
type GetTotalSummaryUseCase struct {
	repo  SummaryRepository
	loc   *time.Location
	nowFn func() time.Time
}

// NewGetTotalSummaryUseCase creates a new GetTotalSummaryUseCase instance.
func NewGetTotalSummaryUseCase(repo SummaryRepository, loc *time.Location) *GetTotalSummaryUseCase {
	return &GetTotalSummaryUseCase{
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}
}

// Execute computes the summary. The current and previous aggregations are
// independent and run concurrently; if either fails the whole operation fails.
func (uc *GetTotalSummaryUseCase) Execute(
	ctx context.Context,
	input GetTotalSummaryInput,
) (*GetTotalSummaryOutput, error) {
	if input.Period != PeriodToday && input.Period != Period7Days && input.Period != Period30Days {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidPeriodType,
			"type must be: today, 7days, or 30days",
			domainerror.ErrInvalidPeriodType,
		)
	}

	window, err := ComputeWindow(input.Period, uc.nowFn().In(uc.loc))
	if err != nil {
		return nil, err
	}

	var current, previous decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = uc.aggregate(gctx, input, window.CurrentFrom, window.CurrentTo)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = uc.aggregate(gctx, input, window.PreviousFrom, window.PreviousTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get %s summary: %w", input.Kind, err)
	}

	return &GetTotalSummaryOutput{
		Type: input.Period,
		Current: PeriodTotal{
			FromDate: window.CurrentFrom,
			ToDate:   window.CurrentTo,
			Total:    current,
		},
		Previous: PeriodTotal{
			FromDate: window.PreviousFrom,
			ToDate:   window.PreviousTo,
			Total:    previous,
		},
	}, nil
}

// aggregate runs the metric's aggregation over one window.
func (uc *GetTotalSummaryUseCase) aggregate(
	ctx context.Context,
	input GetTotalSummaryInput,
	from, to time.Time,
) (decimal.Decimal, error) {
	if input.Metric == MetricCount {
		count, err := uc.repo.CountTransactions(ctx, input.Kind, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(count), nil
	}

	return uc.repo.SumTotalPrice(ctx, input.Kind, from, to)
}
