package kv

import (
	"context"
	"testing"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/hishab-app/hishab_backend/internal/repositories/kvstore/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionRepository_LoadCustom_EmptyStore(t *testing.T) {
	repo := NewSuggestionRepository(memory.NewStore())

	suggestions, err := repo.LoadCustom(context.Background(), domain.Income)
	require.NoError(t, err)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestSuggestionRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSuggestionRepository(memory.NewStore())

	require.NoError(t, repo.SaveCustom(ctx, domain.Expense, []string{"Rent", "Fuel"}))

	suggestions, err := repo.LoadCustom(ctx, domain.Expense)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Fuel"}, suggestions)
}

func TestSuggestionRepository_ListsArePerType(t *testing.T) {
	ctx := context.Background()
	repo := NewSuggestionRepository(memory.NewStore())

	require.NoError(t, repo.SaveCustom(ctx, domain.Income, []string{"Freelance"}))
	require.NoError(t, repo.SaveCustom(ctx, domain.Expense, []string{"Rent"}))

	income, err := repo.LoadCustom(ctx, domain.Income)
	require.NoError(t, err)
	expense, err := repo.LoadCustom(ctx, domain.Expense)
	require.NoError(t, err)

	assert.Equal(t, []string{"Freelance"}, income)
	assert.Equal(t, []string{"Rent"}, expense)
}

func TestSuggestionRepository_CorruptPayloadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewSuggestionRepository(store)

	require.NoError(t, store.Set(ctx, incomeSuggestionsKey, []byte(`not json`)))

	suggestions, err := repo.LoadCustom(ctx, domain.Income)
	require.NoError(t, err, "corruption is never fatal")
	assert.Empty(t, suggestions)
}
