package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hexapixel/backend/internal/domain/entity"
)

// CreateTransactionRequest is the request body for recording a transaction.
// Outcome records arrive as multipart form data so the receipt file can ride
// along; income records use the same shape without a receipt.
type CreateTransactionRequest struct {
	Price        decimal.Decimal `form:"price" json:"price" binding:"required"`
	ItemID       string          `form:"item" json:"item" binding:"required"`
	Quantity     int             `form:"quantity" json:"quantity" binding:"required"`
	TotalPrice   decimal.Decimal `form:"totalPrice" json:"totalPrice" binding:"required"`
	Counterparty string          `form:"name" json:"name" binding:"required"`
	Whatsapp     string          `form:"whatsapp" json:"whatsapp"`
}

// UpdateTransactionRequest is the request body for updating a transaction.
type UpdateTransactionRequest struct {
	Price        *decimal.Decimal `form:"price" json:"price"`
	ItemID       *string          `form:"item" json:"item"`
	Quantity     *int             `form:"quantity" json:"quantity"`
	TotalPrice   *decimal.Decimal `form:"totalPrice" json:"totalPrice"`
	Counterparty *string          `form:"name" json:"name"`
	Whatsapp     *string          `form:"whatsapp" json:"whatsapp"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Price        decimal.Decimal `json:"price"`
	ItemID       string          `json:"itemId"`
	ItemName     string          `json:"itemName,omitempty"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Counterparty string          `json:"name"`
	Whatsapp     string          `json:"whatsapp"`
	ReceiptURL   string          `json:"receiptUrl,omitempty"`
	CreatedBy    string          `json:"createdBy"`
	CreatorName  string          `json:"creatorName,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TransactionListResponse is a page of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

// ToTransactionResponse converts a transaction entity to its API shape.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           transaction.ID.String(),
		Price:        transaction.Price,
		ItemID:       transaction.ItemID.String(),
		Quantity:     transaction.Quantity,
		TotalPrice:   transaction.TotalPrice,
		Counterparty: transaction.Counterparty,
		Whatsapp:     transaction.Whatsapp,
		ReceiptURL:   transaction.ReceiptURL,
		CreatedBy:    transaction.CreatedBy.String(),
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}

// ToTransactionWithRefsResponse converts a transaction with resolved
// references to its API shape.
func ToTransactionWithRefsResponse(row *entity.TransactionWithRefs) TransactionResponse {
	response := ToTransactionResponse(row.Transaction)
	response.ItemName = row.ItemName
	response.CreatorName = row.CreatorName
	return response
}

// ToTransactionListResponse converts a list result to its API shape.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	responses := make([]TransactionResponse, len(result.Transactions))
	for i, row := range result.Transactions {
		responses[i] = ToTransactionWithRefsResponse(row)
	}
	return TransactionListResponse{
		Transactions: responses,
		Pagination: Pagination{
			Page:      result.Page,
			Limit:     result.Limit,
			Total:     result.Total,
			TotalPage: result.TotalPages,
		},
	}
}
