package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hishab-app/hishab_backend/internal/apperrors"
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/dto"
)

// transactionService provides the core transaction ledger operations.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo: txnRepo,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the draft, assigns an ID and persists it.
// On validation failure nothing is persisted, so the caller's draft survives.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txType, ok := domain.ParseTransactionType(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}

	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	created, err := s.txnRepo.Append(ctx, domain.Transaction{
		Type:     txType,
		Category: category,
		Amount:   *req.Amount,
		Date:     date,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to persist new transaction")
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", created.ID),
		slog.String("type", string(created.Type)))
	return created, nil
}

// ListTransactions returns the stored transactions passing the filter, in
// stored order. Relative date windows are evaluated against the current clock.
func (s *transactionService) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.LoadAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return domain.FilterTransactions(txns, filter, time.Now()), nil
}

// RecentTransactions returns up to limit transactions, newest first.
func (s *transactionService) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.LoadAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)
	domain.SortNewestFirst(sorted)
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// UpdateTransaction merges the provided fields over the entry with the given
// ID. A missing ID is an idempotent no-op returning the unchanged list.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) ([]domain.Transaction, error) {
	patch, err := buildPatch(req)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", id))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction update applied", slog.Int64("transaction_id", id))
	return txns, nil
}

func buildPatch(req dto.UpdateTransactionRequest) (domain.TransactionPatch, error) {
	var patch domain.TransactionPatch

	if req.Type != nil {
		txType, ok := domain.ParseTransactionType(*req.Type)
		if !ok {
			return patch, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		patch.Type = &txType
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return patch, fmt.Errorf("%w: category must not be blank", apperrors.ErrValidation)
		}
		patch.Category = &category
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return patch, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		amount := *req.Amount
		patch.Amount = &amount
	}
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return patch, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		patch.Date = &date
	}
	return patch, nil
}

// DeleteTransaction removes the entry with the given ID; silent no-op when
// missing.
func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.DeleteByID(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", id))
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return txns, nil
}

// ClearTransactions removes every stored transaction.
func (s *transactionService) ClearTransactions(ctx context.Context) error {
	if err := s.txnRepo.ClearAll(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear transactions")
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	s.LogInfo(ctx, "All transactions cleared")
	return nil
}
