package persistence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/persistence/model"
)

// transactionRow is the joined row shape used by listings. Item and creator
// columns are nullable because the referenced rows may have been deleted.
type transactionRow struct {
	ID              uuid.UUID       `gorm:"column:id"`
	Kind            string          `gorm:"column:kind"`
	Price           decimal.Decimal `gorm:"column:price"`
	ItemID          uuid.UUID       `gorm:"column:item_id"`
	Quantity        int             `gorm:"column:quantity"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price"`
	Counterparty    string          `gorm:"column:counterparty"`
	Whatsapp        string          `gorm:"column:whatsapp"`
	ReceiptURL      string          `gorm:"column:receipt_url"`
	CreatedBy       uuid.UUID       `gorm:"column:created_by"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
	ItemName        *string         `gorm:"column:item_name"`
	CreatorName     *string         `gorm:"column:creator_name"`
	CreatorUsername *string         `gorm:"column:creator_username"`
}

func (row *transactionRow) toEntity() *entity.TransactionWithRefs {
	result := &entity.TransactionWithRefs{
		Transaction: &entity.Transaction{
			ID:           row.ID,
			Kind:         entity.TransactionKind(row.Kind),
			Price:        row.Price,
			ItemID:       row.ItemID,
			Quantity:     row.Quantity,
			TotalPrice:   row.TotalPrice,
			Counterparty: row.Counterparty,
			Whatsapp:     row.Whatsapp,
			ReceiptURL:   row.ReceiptURL,
			CreatedBy:    row.CreatedBy,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
	}
	if row.ItemName != nil {
		result.ItemName = *row.ItemName
	}
	if row.CreatorName != nil {
		result.CreatorName = *row.CreatorName
	}
	if row.CreatorUsername != nil {
		result.CreatorUsername = *row.CreatorUsername
	}
	return result
}

const transactionSelect = `
	t.id, t.kind, t.price, t.item_id, t.quantity, t.total_price,
	t.counterparty, t.whatsapp, t.receipt_url, t.created_by, t.created_at, t.updated_at,
	i.name as item_name,
	u.full_name as creator_name,
	u.username as creator_username
`

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := r.db.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction of the given kind by ID with references
// resolved.
func (r *transactionRepository) GetByID(
	ctx context.Context,
	kind entity.TransactionKind,
	id uuid.UUID,
) (*entity.TransactionWithRefs, error) {
	var row transactionRow
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(transactionSelect).
		Joins("LEFT JOIN items i ON t.item_id = i.id").
		Joins("LEFT JOIN users u ON t.created_by = u.id").
		Where("t.kind = ? AND t.id = ?", string(kind), id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"record not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return row.toEntity(), nil
}

// List returns a page of transactions with references resolved, newest first.
// Search matches counterparty, whatsapp, item name, and creator.
func (r *transactionRepository) List(
	ctx context.Context,
	params adapter.TransactionListParams,
) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).
		Table("transactions t").
		Joins("LEFT JOIN items i ON t.item_id = i.id").
		Joins("LEFT JOIN users u ON t.created_by = u.id").
		Where("t.kind = ?", string(params.Kind))

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"t.counterparty ILIKE ? OR t.whatsapp ILIKE ? OR i.name ILIKE ? OR u.full_name ILIKE ? OR u.username ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	var rows []transactionRow
	err := query.
		Select(transactionSelect).
		Order("t.created_at DESC").
		Limit(params.Limit).
		Offset((params.Page - 1) * params.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*entity.TransactionWithRefs, len(rows))
	for i := range rows {
		transactions[i] = rows[i].toEntity()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         params.Page,
		Limit:        params.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(params.Limit))),
	}, nil
}

// ListRange returns all transactions of one kind created within [from, to],
// ascending by creation time, with references resolved.
func (r *transactionRepository) ListRange(
	ctx context.Context,
	kind entity.TransactionKind,
	from, to time.Time,
) ([]*entity.TransactionWithRefs, error) {
	var rows []transactionRow
	err := r.db.WithContext(ctx).
		Table("transactions t").
		Select(transactionSelect).
		Joins("LEFT JOIN items i ON t.item_id = i.id").
		Joins("LEFT JOIN users u ON t.created_by = u.id").
		Where("t.kind = ? AND t.created_at >= ? AND t.created_at <= ?", string(kind), from, to).
		Order("t.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*entity.TransactionWithRefs, len(rows))
	for i := range rows {
		transactions[i] = rows[i].toEntity()
	}
	return transactions, nil
}

// Update persists changes to an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := r.db.WithContext(ctx).Save(transactionModel).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// Delete removes a transaction of the given kind by ID.
func (r *transactionRepository) Delete(ctx context.Context, kind entity.TransactionKind, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Delete(&model.TransactionModel{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
