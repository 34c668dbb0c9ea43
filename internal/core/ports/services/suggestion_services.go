package services

import (
	"context"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
)

// SuggestionSvcFacade defines operations for category suggestion lists.
type SuggestionSvcFacade interface {
	// ListSuggestions returns the built-in defaults for the type and locale
	// followed by the persisted custom entries, in that order.
	ListSuggestions(ctx context.Context, txType domain.TransactionType, loc domain.Locale) ([]string, error)

	// AddSuggestion appends a trimmed custom suggestion. Blank input and
	// case-insensitive duplicates of the combined default+custom list are
	// silently discarded.
	AddSuggestion(ctx context.Context, txType domain.TransactionType, loc domain.Locale, text string) error
}
