// Package kv implements the typed repositories over the abstract key-value
// store. The stored layout mirrors the original client: one JSON array of
// transaction records under a single key, custom suggestion lists under one
// key per transaction type.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hishab-app/hishab_backend/internal/apperrors"
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	"github.com/hishab-app/hishab_backend/internal/models"
	"github.com/hishab-app/hishab_backend/internal/utils/mapping"
)

// transactionsKey is the store key holding the full transaction list.
const transactionsKey = "transactions"

// TransactionRepository is the typed wrapper over the KVStore for the
// transaction list. Every mutation is a full read-modify-write cycle; the
// stored list is the single source of truth and nothing is cached.
type TransactionRepository struct {
	store portsrepo.KVStore
	now   func() time.Time
}

// NewTransactionRepository creates a transaction repository over the store.
func NewTransactionRepository(store portsrepo.KVStore) *TransactionRepository {
	return &TransactionRepository{
		store: store,
		now:   time.Now,
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// LoadAll returns the full stored list. A missing key or unparseable stored
// value degrades to an empty list; corruption is never fatal.
func (r *TransactionRepository) LoadAll(ctx context.Context) ([]domain.Transaction, error) {
	raw, err := r.store.Get(ctx, transactionsKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}

	var stored []models.Transaction
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("Stored transaction list is not valid JSON, treating as empty",
			slog.String("error", err.Error()))
		return []domain.Transaction{}, nil
	}

	txns, rowErrs := mapping.ToDomainTransactionSlice(stored)
	for _, rowErr := range rowErrs {
		slog.Warn("Dropping unreadable transaction row", slog.String("error", rowErr.Error()))
	}
	return txns, nil
}

// SaveAll replaces the entire stored list.
func (r *TransactionRepository) SaveAll(ctx context.Context, txns []domain.Transaction) error {
	raw, err := json.Marshal(mapping.ToModelTransactionSlice(txns))
	if err != nil {
		return fmt.Errorf("failed to serialize transactions: %w", err)
	}
	if err := r.store.Set(ctx, transactionsKey, raw); err != nil {
		return fmt.Errorf("failed to write transactions: %w", err)
	}
	return nil
}

// Append assigns a fresh ID and persists the draft. IDs derive from the
// creation time in milliseconds; when the clock collides with an existing ID
// the new one is bumped past the current maximum so IDs stay unique and
// monotonically increasing.
func (r *TransactionRepository) Append(ctx context.Context, draft domain.Transaction) (*domain.Transaction, error) {
	txns, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	id := r.now().UnixMilli()
	for _, tx := range txns {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	draft.ID = id

	txns = append(txns, draft)
	if err := r.SaveAll(ctx, txns); err != nil {
		return nil, err
	}
	return &draft, nil
}

// UpdateByID merges non-nil patch fields over the entry with the given ID and
// persists. A missing ID returns the list unchanged without persisting.
func (r *TransactionRepository) UpdateByID(ctx context.Context, id int64, patch domain.TransactionPatch) ([]domain.Transaction, error) {
	txns, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range txns {
		if txns[i].ID != id {
			continue
		}
		found = true
		if patch.Type != nil {
			txns[i].Type = *patch.Type
		}
		if patch.Category != nil {
			txns[i].Category = *patch.Category
		}
		if patch.Amount != nil {
			txns[i].Amount = *patch.Amount
		}
		if patch.Date != nil {
			txns[i].Date = *patch.Date
		}
		break
	}

	if !found {
		return txns, nil
	}
	if err := r.SaveAll(ctx, txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// DeleteByID removes the first entry with the given ID and persists.
// A missing ID returns the list unchanged without persisting.
func (r *TransactionRepository) DeleteByID(ctx context.Context, id int64) ([]domain.Transaction, error) {
	txns, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range txns {
		if txns[i].ID == id {
			txns = append(txns[:i], txns[i+1:]...)
			if err := r.SaveAll(ctx, txns); err != nil {
				return nil, err
			}
			return txns, nil
		}
	}
	return txns, nil
}

// ClearAll removes the entire stored list.
func (r *TransactionRepository) ClearAll(ctx context.Context) error {
	if err := r.store.Delete(ctx, transactionsKey); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
