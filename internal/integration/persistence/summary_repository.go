package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hexapixel/backend/internal/application/usecase/summary"
	"github.com/hexapixel/backend/internal/domain/entity"
)

// summaryRepository implements the summary.SummaryRepository interface.
type summaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(db *gorm.DB) summary.SummaryRepository {
	return &summaryRepository{
		db: db,
	}
}

// SumTotalPrice sums total_price over a kind within [from, to].
func (r *summaryRepository) SumTotalPrice(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT COALESCE(SUM(total_price), 0) as total
			FROM transactions
			WHERE kind = ? AND created_at >= ? AND created_at <= ?
		`, string(kind), from, to).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum total price: %w", err)
	}
	return result.Total, nil
}

// CountTransactions counts transactions of a kind within [from, to].
func (r *summaryRepository) CountTransactions(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("transactions").
		Where("kind = ? AND created_at >= ? AND created_at <= ?", string(kind), from, to).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// CountByDay counts transactions of a kind within [from, to] grouped by
// calendar day in the given location.
func (r *summaryRepository) CountByDay(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
	loc *time.Location,
) ([]summary.DailyCount, error) {
	var results []struct {
		Day   time.Time `gorm:"column:day"`
		Total int64     `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT (created_at AT TIME ZONE ?)::date as day, COUNT(*) as total
			FROM transactions
			WHERE kind = ? AND created_at >= ? AND created_at <= ?
			GROUP BY day
			ORDER BY day
		`, loc.String(), string(kind), from, to).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions by day: %w", err)
	}

	counts := make([]summary.DailyCount, len(results))
	for i, res := range results {
		// The date column scans as midnight UTC; its calendar components are
		// already in the requested zone.
		counts[i] = summary.DailyCount{
			Date:  summary.CalendarDate{Year: res.Day.Year(), Month: res.Day.Month(), Day: res.Day.Day()},
			Total: res.Total,
		}
	}
	return counts, nil
}

// SumTotalPriceByDay sums total_price of a kind within [from, to] grouped by
// UTC calendar day.
func (r *summaryRepository) SumTotalPriceByDay(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
) ([]summary.DailyAmount, error) {
	var results []struct {
		Day   time.Time       `gorm:"column:day"`
		Total decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT (created_at AT TIME ZONE 'UTC')::date as day, COALESCE(SUM(total_price), 0) as total
			FROM transactions
			WHERE kind = ? AND created_at >= ? AND created_at <= ?
			GROUP BY day
			ORDER BY day
		`, string(kind), from, to).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum total price by day: %w", err)
	}

	amounts := make([]summary.DailyAmount, len(results))
	for i, res := range results {
		amounts[i] = summary.DailyAmount{
			Date:  summary.CalendarDate{Year: res.Day.Year(), Month: res.Day.Month(), Day: res.Day.Day()},
			Total: res.Total,
		}
	}
	return amounts, nil
}

// SumTotalPriceByItem sums total_price of a kind within [from, to] grouped by
// item. Ties break on the item ID so rankings are stable across runs.
func (r *summaryRepository) SumTotalPriceByItem(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
	limit int,
) ([]summary.RawItemTotal, error) {
	var results []struct {
		ItemID   uuid.UUID       `gorm:"column:item_id"`
		ItemName *string         `gorm:"column:item_name"`
		Total    decimal.Decimal `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT t.item_id, i.name as item_name, SUM(t.total_price) as total
			FROM transactions t
			LEFT JOIN items i ON t.item_id = i.id
			WHERE t.kind = ? AND t.created_at >= ? AND t.created_at <= ?
			GROUP BY t.item_id, i.name
			ORDER BY total DESC, t.item_id
			LIMIT ?
		`, string(kind), from, to, limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum total price by item: %w", err)
	}

	totals := make([]summary.RawItemTotal, len(results))
	for i, res := range results {
		totals[i] = summary.RawItemTotal{
			ItemID:   res.ItemID,
			ItemName: res.ItemName,
			Total:    res.Total,
		}
	}
	return totals, nil
}

// ListCatalogItems returns the full catalog of a kind in load order.
func (r *summaryRepository) ListCatalogItems(
	ctx context.Context,
	kind entity.TransactionKind,
) ([]summary.CatalogItem, error) {
	var results []struct {
		ID   uuid.UUID `gorm:"column:id"`
		Name string    `gorm:"column:name"`
	}

	err := r.db.WithContext(ctx).
		Table("items").
		Select("id, name").
		Where("kind = ?", string(kind)).
		Order("created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}

	items := make([]summary.CatalogItem, len(results))
	for i, res := range results {
		items[i] = summary.CatalogItem{ID: res.ID, Name: res.Name}
	}
	return items, nil
}

// LatestIncome returns the most recent income rows, newest first.
func (r *summaryRepository) LatestIncome(ctx context.Context, limit int) ([]summary.RawActivity, error) {
	var results []struct {
		Counterparty string    `gorm:"column:counterparty"`
		Whatsapp     string    `gorm:"column:whatsapp"`
		Quantity     int       `gorm:"column:quantity"`
		CreatedAt    time.Time `gorm:"column:created_at"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select("counterparty, whatsapp, quantity, created_at").
		Where("kind = ?", string(entity.KindIncome)).
		Order("created_at DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list latest income: %w", err)
	}

	activities := make([]summary.RawActivity, len(results))
	for i, res := range results {
		activities[i] = summary.RawActivity{
			CustomerName: res.Counterparty,
			Whatsapp:     res.Whatsapp,
			Quantity:     res.Quantity,
			CreatedAt:    res.CreatedAt,
		}
	}
	return activities, nil
}
