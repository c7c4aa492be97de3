package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	itemNames    map[uuid.UUID]string
	listRangeErr error
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{
		transactions: map[uuid.UUID]*entity.Transaction{},
		itemNames:    map[uuid.UUID]string{},
	}
}

func (f *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepository) GetByID(_ context.Context, kind entity.TransactionKind, id uuid.UUID) (*entity.TransactionWithRefs, error) {
	tx, ok := f.transactions[id]
	if !ok || tx.Kind != kind {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"record not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return &entity.TransactionWithRefs{Transaction: tx, ItemName: f.itemNames[tx.ItemID]}, nil
}

func (f *fakeTransactionRepository) List(_ context.Context, params adapter.TransactionListParams) (*entity.TransactionListResult, error) {
	rows := make([]*entity.TransactionWithRefs, 0)
	for _, tx := range f.transactions {
		if tx.Kind == params.Kind {
			rows = append(rows, &entity.TransactionWithRefs{Transaction: tx})
		}
	}
	return &entity.TransactionListResult{
		Transactions: rows,
		Total:        int64(len(rows)),
		Page:         params.Page,
		Limit:        params.Limit,
		TotalPages:   1,
	}, nil
}

func (f *fakeTransactionRepository) ListRange(_ context.Context, kind entity.TransactionKind, from, to time.Time) ([]*entity.TransactionWithRefs, error) {
	if f.listRangeErr != nil {
		return nil, f.listRangeErr
	}
	rows := make([]*entity.TransactionWithRefs, 0)
	for _, tx := range f.transactions {
		if tx.Kind == kind && !tx.CreatedAt.Before(from) && !tx.CreatedAt.After(to) {
			rows = append(rows, &entity.TransactionWithRefs{Transaction: tx})
		}
	}
	return rows, nil
}

func (f *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepository) Delete(_ context.Context, kind entity.TransactionKind, id uuid.UUID) error {
	tx, ok := f.transactions[id]
	if !ok || tx.Kind != kind {
		return domainerror.ErrTransactionNotFound
	}
	delete(f.transactions, id)
	return nil
}

type fakeItemRepository struct {
	items map[uuid.UUID]*entity.Item
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: map[uuid.UUID]*entity.Item{}}
}

func (f *fakeItemRepository) Create(_ context.Context, item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNotFound,
			"item not found",
			domainerror.ErrItemNotFound,
		)
	}
	return item, nil
}

func (f *fakeItemRepository) GetByName(_ context.Context, kind entity.TransactionKind, name string) (*entity.Item, error) {
	for _, item := range f.items {
		if item.Kind == kind && item.Name == name {
			return item, nil
		}
	}
	return nil, domainerror.ErrItemNotFound
}

func (f *fakeItemRepository) ListByKind(_ context.Context, kind entity.TransactionKind) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0)
	for _, item := range f.items {
		if item.Kind == kind {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeItemRepository) Update(_ context.Context, item *entity.Item) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

type fakeExportFormatter struct {
	lastSheetName string
	lastRowCount  int
}

func (f *fakeExportFormatter) TransactionLog(sheetName string, rows []*entity.TransactionWithRefs) ([]byte, error) {
	f.lastSheetName = sheetName
	f.lastRowCount = len(rows)
	return []byte("xlsx"), nil
}
