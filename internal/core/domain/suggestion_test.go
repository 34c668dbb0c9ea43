package domain_test

import (
	"testing"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultSuggestions(t *testing.T) {
	t.Run("english income defaults", func(t *testing.T) {
		got := domain.DefaultSuggestions(domain.Income, domain.LocaleEnglish)
		assert.Equal(t, []string{"Salary", "Gift", "Bonus", "Interest"}, got)
	})

	t.Run("english expense defaults", func(t *testing.T) {
		got := domain.DefaultSuggestions(domain.Expense, domain.LocaleEnglish)
		assert.Equal(t, []string{"Groceries", "Shopping", "Bills", "Transport"}, got)
	})

	t.Run("bengali defaults", func(t *testing.T) {
		got := domain.DefaultSuggestions(domain.Income, domain.LocaleBengali)
		assert.Equal(t, []string{"বেতন", "উপহার", "বোনাস", "মুনাফা"}, got)
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		got := domain.DefaultSuggestions(domain.Expense, domain.Locale("fr"))
		assert.Equal(t, []string{"Groceries", "Shopping", "Bills", "Transport"}, got)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		first := domain.DefaultSuggestions(domain.Income, domain.LocaleEnglish)
		first[0] = "mutated"
		second := domain.DefaultSuggestions(domain.Income, domain.LocaleEnglish)
		assert.Equal(t, "Salary", second[0])
	})
}
