package summary

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// CalendarDate is a canonical (year, month, day) key for per-day buckets.
// Keying by a typed date instead of a formatted string keeps gap-filling
// independent of locale and date formatting.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CalendarDateOf returns the calendar date of t in the given location.
func CalendarDateOf(t time.Time, loc *time.Location) CalendarDate {
	local := t.In(loc)
	return CalendarDate{Year: local.Year(), Month: local.Month(), Day: local.Day()}
}

// DailyCount is the number of transactions on one calendar day.
type DailyCount struct {
	Date  CalendarDate
	Total int64
}

// DailyAmount is the summed total price of transactions on one calendar day.
type DailyAmount struct {
	Date  CalendarDate
	Total decimal.Decimal
}

// RawItemTotal is the summed total price of one item's transactions within a
// window. ItemName is nil when the referenced catalog item no longer exists.
type RawItemTotal struct {
	ItemID   uuid.UUID
	ItemName *string
	Total    decimal.Decimal
}

// CatalogItem is a catalog entry as seen by the ranking use case.
type CatalogItem struct {
	ID   uuid.UUID
	Name string
}

// RawActivity is one row of the latest income activity feed.
type RawActivity struct {
	CustomerName string
	Whatsapp     string
	Quantity     int
	CreatedAt    time.Time
}

// SummaryRepository defines the read-only aggregation capability the summary
// engine requires from the transaction store. All range bounds are inclusive
// on both ends and filter on the transaction creation time.
type SummaryRepository interface {
	// SumTotalPrice sums total_price over a kind within [from, to].
	// An empty range yields zero, not an error.
	SumTotalPrice(ctx context.Context, kind entity.TransactionKind, from, to time.Time) (decimal.Decimal, error)

	// CountTransactions counts transactions of a kind within [from, to].
	CountTransactions(ctx context.Context, kind entity.TransactionKind, from, to time.Time) (int64, error)

	// CountByDay counts transactions of a kind within [from, to] grouped by
	// calendar day in the given location. Days without transactions are
	// absent from the result.
	CountByDay(ctx context.Context, kind entity.TransactionKind, from, to time.Time, loc *time.Location) ([]DailyCount, error)

	// SumTotalPriceByDay sums total_price of a kind within [from, to] grouped
	// by UTC calendar day (the store's default formatting).
	SumTotalPriceByDay(ctx context.Context, kind entity.TransactionKind, from, to time.Time) ([]DailyAmount, error)

	// SumTotalPriceByItem sums total_price of a kind within [from, to]
	// grouped by item, descending by total with a deterministic tie-break,
	// limited to the given number of groups. Item names are resolved at query
	// time; deleted items yield a nil name.
	SumTotalPriceByItem(ctx context.Context, kind entity.TransactionKind, from, to time.Time, limit int) ([]RawItemTotal, error)

	// ListCatalogItems returns the full catalog of a kind in load order.
	ListCatalogItems(ctx context.Context, kind entity.TransactionKind) ([]CatalogItem, error)

	// LatestIncome returns the most recent income rows, newest first.
	LatestIncome(ctx context.Context, limit int) ([]RawActivity, error)
}
