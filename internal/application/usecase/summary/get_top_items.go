package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// topItemsLimit caps the ranking length regardless of catalog size.
const topItemsLimit = 6

// unknownItemName labels totals whose catalog item has been deleted.
const unknownItemName = "Unknown Item"

// GetTopItemsInput represents the input for the item ranking.
type GetTopItemsInput struct {
	Kind   entity.TransactionKind
	Period PeriodType // today, 7days or 30days
}

// ItemTotal is one ranked row with the window it was computed over.
type ItemTotal struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
}

// GetTopItemsOutput represents the item ranking for the current window.
type GetTopItemsOutput struct {
	Type     PeriodType  `json:"type"`
	FromDate time.Time   `json:"fromDate"`
	ToDate   time.Time   `json:"toDate"`
	Items    []ItemTotal `json:"items"`
}

// GetTopItemsUseCase ranks catalog items by summed total price within the
// current window of a period.
type GetTopItemsUseCase struct {
	repo  SummaryRepository
	loc   *time.Location
	nowFn func() time.Time
}

// NewGetTopItemsUseCase creates a new GetTopItemsUseCase instance.
func NewGetTopItemsUseCase(repo SummaryRepository, loc *time.Location) *GetTopItemsUseCase {
	return &GetTopItemsUseCase{
		repo:  repo,
		loc:   loc,
		nowFn: time.Now,
	}
}

// Execute computes the ranking. Totals whose item was deleted keep their
// aggregate under the "Unknown Item" label. When fewer than six items have
// activity, catalog items without transactions pad the tail with zero totals,
// in catalog load order, never displacing a ranked row.
func (uc *GetTopItemsUseCase) Execute(
	ctx context.Context,
	input GetTopItemsInput,
) (*GetTopItemsOutput, error) {
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

	ranked, err := uc.repo.SumTotalPriceByItem(ctx, input.Kind, window.CurrentFrom, window.CurrentTo, topItemsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank %s items: %w", input.Kind, err)
	}

	items := make([]ItemTotal, 0, topItemsLimit)
	used := make(map[string]bool, len(ranked))
	for _, row := range ranked {
		name := unknownItemName
		if row.ItemName != nil {
			name = *row.ItemName
			used[name] = true
		}
		items = append(items, ItemTotal{
			Name:     name,
			Total:    row.Total,
			FromDate: window.CurrentFrom,
			ToDate:   window.CurrentTo,
		})
	}

	if len(items) < topItemsLimit {
		catalog, err := uc.repo.ListCatalogItems(ctx, input.Kind)
		if err != nil {
			return nil, fmt.Errorf("failed to pad %s item ranking: %w", input.Kind, err)
		}
		for _, item := range catalog {
			if len(items) == topItemsLimit {
				break
			}
			if used[item.Name] {
				continue
			}
			items = append(items, ItemTotal{
				Name:     item.Name,
				Total:    decimal.Zero,
				FromDate: window.CurrentFrom,
				ToDate:   window.CurrentTo,
			})
		}
	}

	return &GetTopItemsOutput{
		Type:     input.Period,
		FromDate: window.CurrentFrom,
		ToDate:   window.CurrentTo,
		Items:    items,
	}, nil
}
