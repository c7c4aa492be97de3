package summary

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// fakeTransaction is the minimal row shape the fake store aggregates over.
type fakeTransaction struct {
	Kind         entity.TransactionKind
	ItemID       string
	ItemName     *string
	TotalPrice   decimal.Decimal
	CustomerName string
	Whatsapp     string
	Quantity     int
	CreatedAt    time.Time
}

// fakeSummaryRepository aggregates in memory the way the SQL store does, so
// use case tests exercise the gap-fill and ranking logic against realistic
// query results.
type fakeSummaryRepository struct {
	transactions []fakeTransaction
	catalog      []CatalogItem
	err          error
}

func (f *fakeSummaryRepository) inRange(tx fakeTransaction, kind entity.TransactionKind, from, to time.Time) bool {
	if tx.Kind != kind {
		return false
	}
	return !tx.CreatedAt.Before(from) && !tx.CreatedAt.After(to)
}

func (f *fakeSummaryRepository) SumTotalPrice(_ context.Context, kind entity.TransactionKind, from, to time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, tx := range f.transactions {
		if f.inRange(tx, kind, from, to) {
			total = total.Add(tx.TotalPrice)
		}
	}
	return total, nil
}

func (f *fakeSummaryRepository) CountTransactions(_ context.Context, kind entity.TransactionKind, from, to time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, tx := range f.transactions {
		if f.inRange(tx, kind, from, to) {
			count++
		}
	}
	return count, nil
}

func (f *fakeSummaryRepository) CountByDay(_ context.Context, kind entity.TransactionKind, from, to time.Time, loc *time.Location) ([]DailyCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	counts := map[CalendarDate]int64{}
	for _, tx := range f.transactions {
		if f.inRange(tx, kind, from, to) {
			counts[CalendarDateOf(tx.CreatedAt, loc)]++
		}
	}
	out := make([]DailyCount, 0, len(counts))
	for date, total := range counts {
		out = append(out, DailyCount{Date: date, Total: total})
	}
	return out, nil
}

func (f *fakeSummaryRepository) SumTotalPriceByDay(_ context.Context, kind entity.TransactionKind, from, to time.Time) ([]DailyAmount, error) {
	if f.err != nil {
		return nil, f.err
	}
	amounts := map[CalendarDate]decimal.Decimal{}
	for _, tx := range f.transactions {
		if f.inRange(tx, kind, from, to) {
			key := CalendarDateOf(tx.CreatedAt, time.UTC)
			amounts[key] = amounts[key].Add(tx.TotalPrice)
		}
	}
	out := make([]DailyAmount, 0, len(amounts))
	for date, total := range amounts {
		out = append(out, DailyAmount{Date: date, Total: total})
	}
	return out, nil
}

func (f *fakeSummaryRepository) SumTotalPriceByItem(_ context.Context, kind entity.TransactionKind, from, to time.Time, limit int) ([]RawItemTotal, error) {
	if f.err != nil {
		return nil, f.err
	}
	type group struct {
		itemID string
		name   *string
		total  decimal.Decimal
	}
	groups := map[string]*group{}
	for _, tx := range f.transactions {
		if !f.inRange(tx, kind, from, to) {
			continue
		}
		g, ok := groups[tx.ItemID]
		if !ok {
			g = &group{itemID: tx.ItemID, name: tx.ItemName}
			groups[tx.ItemID] = g
		}
		g.total = g.total.Add(tx.TotalPrice)
	}
	rows := make([]*group, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, g)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].total.Equal(rows[j].total) {
			return rows[i].total.GreaterThan(rows[j].total)
		}
		return rows[i].itemID < rows[j].itemID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]RawItemTotal, 0, len(rows))
	for _, g := range rows {
		out = append(out, RawItemTotal{ItemName: g.name, Total: g.total})
	}
	return out, nil
}

func (f *fakeSummaryRepository) ListCatalogItems(_ context.Context, _ entity.TransactionKind) ([]CatalogItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeSummaryRepository) LatestIncome(_ context.Context, limit int) ([]RawActivity, error) {
	if f.err != nil {
		return nil, f.err
	}
	rows := make([]fakeTransaction, 0, len(f.transactions))
	for _, tx := range f.transactions {
		if tx.Kind == entity.KindIncome {
			rows = append(rows, tx)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]RawActivity, 0, len(rows))
	for _, tx := range rows {
		out = append(out, RawActivity{
			CustomerName: tx.CustomerName,
			Whatsapp:     tx.Whatsapp,
			Quantity:     tx.Quantity,
			CreatedAt:    tx.CreatedAt,
		})
	}
	return out, nil
}
