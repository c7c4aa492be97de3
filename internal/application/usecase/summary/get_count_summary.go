package summary

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// GetCountSummaryInput represents the input for a count summary with daily
// detail.
type GetCountSummaryInput struct {
	Kind   entity.TransactionKind
	Period PeriodType // 3days, 7days or 30days
}

// PeriodCount is one window's transaction count with its bounds.
type PeriodCount struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	Total    int64     `json:"total"`
}

// DailyCountBucket is one calendar day of the detail series.
type DailyCountBucket struct {
	Date  time.Time `json:"date"`
	Total int64     `json:"total"`
}

// GetCountSummaryOutput represents the comparison counts plus a dense daily
// detail of the current window.
type GetCountSummaryOutput struct {
	Type     PeriodType         `json:"type"`
	Current  PeriodCount        `json:"current"`
	Previous PeriodCount        `json:"previous"`
	Detail   []DailyCountBucket `json:"detail"`
}

// GetCountSummaryUseCase computes current/previous transaction counts and a
// zero-filled per-day breakdown of the current window.
type GetCountSummaryUseCase struct {
	repo  SummaryRepository
	loc   *time.Location
	nowFn func() time.Time
}

// NewGetCountSummaryUseCase creates a new GetCountSummaryUseCase instance.
func NewGetCountSummaryUseCase(repo SummaryRepository, loc *time.Location) *GetCountSummaryUseCase {
	return &GetCountSummaryUseCase{
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}
}

// Execute computes the count summary. The detail series always contains
// exactly RangeDays buckets in chronological order, with zero totals for days
// without activity.
func (uc *GetCountSummaryUseCase) Execute(
	ctx context.Context,
	input GetCountSummaryInput,
) (*GetCountSummaryOutput, error) {
	if input.Period != Period3Days && input.Period != Period7Days && input.Period != Period30Days {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidCountPeriodType,
			"type must be: 3days, 7days, or 30days",
			domainerror.ErrInvalidCountPeriodType,
		)
	}

	window, err := ComputeWindow(input.Period, uc.nowFn().In(uc.loc))
	if err != nil {
		return nil, err
	}

	var currentCount, previousCount int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentCount, err = uc.repo.CountTransactions(gctx, input.Kind, window.CurrentFrom, window.CurrentTo)
		return err
	})
	g.Go(func() error {
		var err error
		previousCount, err = uc.repo.CountTransactions(gctx, input.Kind, window.PreviousFrom, window.PreviousTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get %s count summary: %w", input.Kind, err)
	}

	// The daily breakdown depends on the current window only and must finish
	// before the gap-fill merge below.
	perDay, err := uc.repo.CountByDay(ctx, input.Kind, window.CurrentFrom, window.CurrentTo, uc.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s count detail: %w", input.Kind, err)
	}

	counts := make(map[CalendarDate]int64, len(perDay))
	for _, d := range perDay {
		counts[d.Date] = d.Total
	}

	rangeDays := input.Period.RangeDays()
	detail := make([]DailyCountBucket, 0, rangeDays)
	for i := 0; i < rangeDays; i++ {
		date := window.CurrentFrom.AddDate(0, 0, i)
		detail = append(detail, DailyCountBucket{
			Date:  date,
			Total: counts[CalendarDateOf(date, uc.loc)],
		})
	}

	return &GetCountSummaryOutput{
		Type: input.Period,
		Current: PeriodCount{
			FromDate: window.CurrentFrom,
			ToDate:   window.CurrentTo,
			Total:    currentCount,
		},
		Previous: PeriodCount{
			FromDate: window.PreviousFrom,
			ToDate:   window.PreviousTo,
			Total:    previousCount,
		},
		Detail: detail,
	}, nil
}
