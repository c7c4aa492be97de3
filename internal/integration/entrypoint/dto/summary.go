package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/application/usecase/summary"
)

// PeriodTotalResponse is one window's aggregate with its bounds.
type PeriodTotalResponse struct {
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
	Total    decimal.Decimal `json:"total"`
}

// TotalSummaryResponse is the current-vs-previous comparison.
type TotalSummaryResponse struct {
	Type     string              `json:"type"`
	Current  PeriodTotalResponse `json:"current"`
	Previous PeriodTotalResponse `json:"previous"`
}

// PeriodCountResponse is one window's transaction count with its bounds.
type PeriodCountResponse struct {
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	Total    int64     `json:"total"`
}

// DailyCountResponse is one calendar day of a count detail series.
type DailyCountResponse struct {
	Date  time.Time `json:"date"`
	Total int64     `json:"total"`
}

// CountSummaryResponse is the comparison counts plus the daily detail.
type CountSummaryResponse struct {
	Type     string               `json:"type"`
	Current  PeriodCountResponse  `json:"current"`
	Previous PeriodCountResponse  `json:"previous"`
	Detail   []DailyCountResponse `json:"detail"`
}

// DailyAmountResponse is one calendar day of the chart series.
type DailyAmountResponse struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailyChartResponse is the dense daily amount series.
type DailyChartResponse struct {
	FromDate time.Time             `json:"fromDate"`
	ToDate   time.Time             `json:"toDate"`
	Data     []DailyAmountResponse `json:"data"`
}

// ItemTotalResponse is one ranked item row.
type ItemTotalResponse struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	FromDate time.Time       `json:"fromDate"`
	ToDate   time.Time       `json:"toDate"`
}

// TopItemsResponse is the item ranking.
type TopItemsResponse struct {
	Type     string              `json:"type"`
	FromDate time.Time           `json:"fromDate"`
	ToDate   time.Time           `json:"toDate"`
	Items    []ItemTotalResponse `json:"items"`
}

// ActivityResponse is one row of the latest income activity feed.
type ActivityResponse struct {
	CustomerName string    `json:"customerName"`
	Whatsapp     string    `json:"whatsapp"`
	Quantity     int       `json:"qty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToTotalSummaryResponse converts a total summary output to its API shape.
func ToTotalSummaryResponse(output *summary.GetTotalSummaryOutput) TotalSummaryResponse {
	return TotalSummaryResponse{
		Type: string(output.Type),
		Current: PeriodTotalResponse{
			FromDate: output.Current.FromDate,
			ToDate:   output.Current.ToDate,
			Total:    output.Current.Total,
		},
		Previous: PeriodTotalResponse{
			FromDate: output.Previous.FromDate,
			ToDate:   output.Previous.ToDate,
			Total:    output.Previous.Total,
		},
	}
}

// ToCountSummaryResponse converts a count summary output to its API shape.
func ToCountSummaryResponse(output *summary.GetCountSummaryOutput) CountSummaryResponse {
	detail := make([]DailyCountResponse, len(output.Detail))
	for i, bucket := range output.Detail {
		detail[i] = DailyCountResponse{Date: bucket.Date, Total: bucket.Total}
	}
	return CountSummaryResponse{
		Type: string(output.Type),
		Current: PeriodCountResponse{
			FromDate: output.Current.FromDate,
			ToDate:   output.Current.ToDate,
			Total:    output.Current.Total,
		},
		Previous: PeriodCountResponse{
			FromDate: output.Previous.FromDate,
			ToDate:   output.Previous.ToDate,
			Total:    output.Previous.Total,
		},
		Detail: detail,
	}
}

// ToDailyChartResponse converts a daily chart output to its API shape.
func ToDailyChartResponse(output *summary.GetDailyChartOutput) DailyChartResponse {
	data := make([]DailyAmountResponse, len(output.Data))
	for i, bucket := range output.Data {
		data[i] = DailyAmountResponse{Date: bucket.Date, Total: bucket.Total}
	}
	return DailyChartResponse{
		FromDate: output.FromDate,
		ToDate:   output.ToDate,
		Data:     data,
	}
}

// ToTopItemsResponse converts a top items output to its API shape.
func ToTopItemsResponse(output *summary.GetTopItemsOutput) TopItemsResponse {
	items := make([]ItemTotalResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = ItemTotalResponse{
			Name:     item.Name,
			Total:    item.Total,
			FromDate: item.FromDate,
			ToDate:   item.ToDate,
		}
	}
	return TopItemsResponse{
		Type:     string(output.Type),
		FromDate: output.FromDate,
		ToDate:   output.ToDate,
		Items:    items,
	}
}

// ToActivityResponse converts a latest activity output to its API shape.
func ToActivityResponse(output *summary.GetLatestActivityOutput) []ActivityResponse {
	responses := make([]ActivityResponse, len(output.Activities))
	for i, activity := range output.Activities {
		responses[i] = ActivityResponse{
			CustomerName: activity.CustomerName,
			Whatsapp:     activity.Whatsapp,
			Quantity:     activity.Quantity,
			CreatedAt:    activity.CreatedAt,
		}
	}
	return responses
}
