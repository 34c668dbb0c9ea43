package dto

import (
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the draft submitted by the add-income /
// add-expense flows. Amount is a pointer so a missing field can be told apart
// from an explicit zero.
type CreateTransactionRequest struct {
	Type     string           `json:"type" binding:"required"`
	Category string           `json:"category" binding:"required"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Date     string           `json:"date" binding:"required,isodate"`
}

// UpdateTransactionRequest carries the subset of fields the edit flow may
// change. Absent fields keep their stored values.
type UpdateTransactionRequest struct {
	Type     *string          `json:"type,omitempty"`
	Category *string          `json:"category,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty" binding:"omitempty,isodate"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID       int64           `json:"id"`
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:       txn.ID,
		Type:     string(txn.Type),
		Category: txn.Category,
		Amount:   txn.Amount,
		Date:     txn.Date.String(),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to responses.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToListTransactionsResponse wraps a domain transaction slice for listing.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	return ListTransactionsResponse{
		Transactions: ToTransactionResponses(txns),
		Count:        len(txns),
	}
}
