package repositories

import (
	"context"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
)

// TransactionReader defines read operations over the stored transaction list.
type TransactionReader interface {
	// LoadAll returns the full stored list. A missing key or unparseable
	// stored value degrades to an empty list, never an error.
	LoadAll(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations over the stored transaction list.
// Every mutation performs a full read-modify-write cycle against the store;
// nothing is assumed about cached state.
type TransactionWriter interface {
	// SaveAll replaces the entire stored list.
	SaveAll(ctx context.Context, txns []domain.Transaction) error

	// Append assigns a fresh unique ID (creation time in milliseconds, bumped
	// past the current maximum on clock collision), appends and persists. The
	// draft's other fields must already be validated.
	Append(ctx context.Context, draft domain.Transaction) (*domain.Transaction, error)

	// UpdateByID merges non-nil patch fields over the entry with the given ID
	// and persists. A missing ID is a silent no-op; the (possibly unchanged)
	// full list is returned either way.
	UpdateByID(ctx context.Context, id int64, patch domain.TransactionPatch) ([]domain.Transaction, error)

	// DeleteByID removes the first entry with the given ID and persists.
	// A missing ID is a silent no-op.
	DeleteByID(ctx context.Context, id int64) ([]domain.Transaction, error)

	// ClearAll removes the entire stored list.
	ClearAll(ctx context.Context) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
