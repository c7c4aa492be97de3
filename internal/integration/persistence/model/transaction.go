package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. Income
// and outcome records share the table, split by the kind column. Item and
// creator references are kept as plain IDs so records survive the referenced
// row's deletion.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(10);not null;index:idx_transactions_kind_created_at"`
	Price        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Counterparty string          `gorm:"type:varchar(255);not null"`
	Whatsapp     string          `gorm:"type:varchar(30)"`
	ReceiptURL   string          `gorm:"type:varchar(500)"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time       `gorm:"not null;index:idx_transactions_kind_created_at"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Kind:         entity.TransactionKind(m.Kind),
		Price:        m.Price,
		ItemID:       m.ItemID,
		Quantity:     m.Quantity,
		TotalPrice:   m.TotalPrice,
		Counterparty: m.Counterparty,
		Whatsapp:     m.Whatsapp,
		ReceiptURL:   m.ReceiptURL,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		Kind:         string(transaction.Kind),
		Price:        transaction.Price,
		ItemID:       transaction.ItemID,
		Quantity:     transaction.Quantity,
		TotalPrice:   transaction.TotalPrice,
		Counterparty: transaction.Counterparty,
		Whatsapp:     transaction.Whatsapp,
		ReceiptURL:   transaction.ReceiptURL,
		CreatedBy:    transaction.CreatedBy,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
