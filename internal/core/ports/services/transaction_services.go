package services

import (
	"context"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/hishab-app/hishab_backend/internal/dto"
)

// TransactionSvcFacade defines the operations of the transaction ledger:
// recording, browsing, editing and deleting income/expense records.
type TransactionSvcFacade interface {
	// CreateTransaction validates the draft, assigns an ID and persists it.
	// Returns apperrors.ErrValidation when required fields are missing or the
	// amount is not a valid non-negative number; the caller keeps its draft.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// ListTransactions returns the stored transactions passing the filter,
	// in stored order.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// RecentTransactions returns up to limit transactions, newest first.
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)

	// UpdateTransaction merges the provided fields over the entry with the
	// given ID. A missing ID is an idempotent no-op, not an error.
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) ([]domain.Transaction, error)

	// DeleteTransaction removes the entry with the given ID; silent no-op
	// when missing.
	DeleteTransaction(ctx context.Context, id int64) ([]domain.Transaction, error)

	// ClearTransactions removes every stored transaction.
	ClearTransactions(ctx context.Context) error
}
