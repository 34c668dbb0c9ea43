package repositories

import (
	"context"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
)

// SuggestionReader defines read operations for persisted custom category
// suggestions. Built-in defaults are not persisted and never appear here.
type SuggestionReader interface {
	// LoadCustom returns the persisted custom suggestion list for a type,
	// empty when nothing has been stored.
	LoadCustom(ctx context.Context, txType domain.TransactionType) ([]string, error)
}

// SuggestionWriter defines write operations for persisted custom suggestions.
type SuggestionWriter interface {
	// SaveCustom replaces the persisted custom suggestion list for a type.
	SaveCustom(ctx context.Context, txType domain.TransactionType, suggestions []string) error
}

// SuggestionRepositoryFacade combines all suggestion repository interfaces.
type SuggestionRepositoryFacade interface {
	SuggestionReader
	SuggestionWriter
}
