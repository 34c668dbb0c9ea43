package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
)

// suggestionService manages the per-type category suggestion lists.
type suggestionService struct {
	BaseService
	suggestionRepo portsrepo.SuggestionRepositoryFacade
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(suggestionRepo portsrepo.SuggestionRepositoryFacade) portssvc.SuggestionSvcFacade {
	return &suggestionService{
		suggestionRepo: suggestionRepo,
	}
}

// Ensure suggestionService implements the SuggestionSvcFacade interface
var _ portssvc.SuggestionSvcFacade = (*suggestionService)(nil)

// ListSuggestions returns the built-in defaults for the type and locale
// followed by the persisted custom entries. No read-time deduplication is
// performed between the two.
func (s *suggestionService) ListSuggestions(ctx context.Context, txType domain.TransactionType, loc domain.Locale) ([]string, error) {
	custom, err := s.suggestionRepo.LoadCustom(ctx, txType)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom suggestions", slog.String("type", string(txType)))
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	return append(domain.DefaultSuggestions(txType, loc), custom...), nil
}

// AddSuggestion appends a trimmed custom suggestion. Blank input and
// case-insensitive duplicates of the combined default+custom list are
// silently discarded, not errors.
func (s *suggestionService) AddSuggestion(ctx context.Context, txType domain.TransactionType, loc domain.Locale, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	custom, err := s.suggestionRepo.LoadCustom(ctx, txType)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom suggestions", slog.String("type", string(txType)))
		return fmt.Errorf("failed to load suggestions: %w", err)
	}

	combined := append(domain.DefaultSuggestions(txType, loc), custom...)
	for _, existing := range combined {
		if strings.EqualFold(strings.TrimSpace(existing), trimmed) {
			s.LogDebug(ctx, "Suggestion already exists, ignoring",
				slog.String("type", string(txType)),
				slog.String("suggestion", trimmed))
			return nil
		}
	}

	custom = append(custom, trimmed)
	if err := s.suggestionRepo.SaveCustom(ctx, txType, custom); err != nil {
		s.LogError(ctx, err, "Failed to persist custom suggestions", slog.String("type", string(txType)))
		return fmt.Errorf("failed to save suggestions: %w", err)
	}

	s.LogInfo(ctx, "Custom suggestion added",
		slog.String("type", string(txType)),
		slog.String("suggestion", trimmed))
	return nil
}
