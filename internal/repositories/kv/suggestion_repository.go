package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hishab-app/hishab_backend/internal/apperrors"
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
)

// Store keys for the per-type custom suggestion lists. Built-in defaults are
// never written here.
const (
	incomeSuggestionsKey  = "incomeSuggestions"
	expenseSuggestionsKey = "expenseSuggestions"
)

// SuggestionRepository is the typed wrapper over the KVStore for custom
// category suggestion lists.
type SuggestionRepository struct {
	store portsrepo.KVStore
}

// NewSuggestionRepository creates a suggestion repository over the store.
func NewSuggestionRepository(store portsrepo.KVStore) *SuggestionRepository {
	return &SuggestionRepository{store: store}
}

// Ensure implementation matches interface
var _ portsrepo.SuggestionRepositoryFacade = (*SuggestionRepository)(nil)

func suggestionKey(txType domain.TransactionType) string {
	if txType == domain.Expense {
		return expenseSuggestionsKey
	}
	return incomeSuggestionsKey
}

// LoadCustom returns the persisted custom suggestion list for a type.
// Missing or unparseable data degrades to an empty list.
func (r *SuggestionRepository) LoadCustom(ctx context.Context, txType domain.TransactionType) ([]string, error) {
	raw, err := r.store.Get(ctx, suggestionKey(txType))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s suggestions: %w", txType, err)
	}

	var suggestions []string
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		slog.Warn("Stored suggestion list is not valid JSON, treating as empty",
			slog.String("type", string(txType)),
			slog.String("error", err.Error()))
		return []string{}, nil
	}
	return suggestions, nil
}

// SaveCustom replaces the persisted custom suggestion list for a type.
func (r *SuggestionRepository) SaveCustom(ctx context.Context, txType domain.TransactionType, suggestions []string) error {
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to serialize %s suggestions: %w", txType, err)
	}
	if err := r.store.Set(ctx, suggestionKey(txType), raw); err != nil {
		return fmt.Errorf("failed to write %s suggestions: %w", txType, err)
	}
	return nil
}
