package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (money in or money out).
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindOutcome TransactionKind = "outcome"
)

// IsValid reports whether the kind is one of the known transaction kinds.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindOutcome
}

// Transaction represents a single income or outcome record. TotalPrice is
// stored as provided by the caller and is not recomputed from Price*Quantity.
type Transaction struct {
	ID           uuid.UUID
	Kind         TransactionKind
	Price        decimal.Decimal
	ItemID       uuid.UUID
	Quantity     int
	TotalPrice   decimal.Decimal
	Counterparty string // customer name for income, person in transaction for outcome
	Whatsapp     string
	ReceiptURL   string // outcome only
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity with a generated ID and
// timestamps.
func NewTransaction(
	kind TransactionKind,
	price decimal.Decimal,
	itemID uuid.UUID,
	quantity int,
	totalPrice decimal.Decimal,
	counterparty, whatsapp, receiptURL string,
	createdBy uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:           uuid.New(),
		Kind:         kind,
		Price:        price,
		ItemID:       itemID,
		Quantity:     quantity,
		TotalPrice:   totalPrice,
		Counterparty: counterparty,
		Whatsapp:     whatsapp,
		ReceiptURL:   receiptURL,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TransactionWithRefs represents a transaction with its item and creator
// references resolved for listings and exports.
type TransactionWithRefs struct {
	Transaction     *Transaction
	ItemName        string
	CreatorName     string
	CreatorUsername string
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*TransactionWithRefs
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
