package mapping_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/hishab-app/hishab_backend/internal/models"
	"github.com/hishab-app/hishab_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainTransaction_NormalizesLegacyTypes(t *testing.T) {
	m := models.Transaction{
		ID:       1,
		Type:     "Credit",
		Category: "Salary",
		Amount:   json.Number("500"),
		Date:     "2023-11-14",
	}

	d, err := mapping.ToDomainTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, domain.Income, d.Type)
	assert.True(t, d.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.NewDate(2023, time.November, 14), d.Date)
}

func TestToDomainTransaction_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *models.Transaction)
	}{
		{name: "unknown type", mutate: func(m *models.Transaction) { m.Type = "transfer" }},
		{name: "bad amount", mutate: func(m *models.Transaction) { m.Amount = json.Number("1.2.3") }},
		{name: "bad date", mutate: func(m *models.Transaction) { m.Date = "14-11-2023" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.Transaction{
				ID:       7,
				Type:     "Expense",
				Category: "Bills",
				Amount:   json.Number("20"),
				Date:     "2023-11-14",
			}
			tt.mutate(&m)

			_, err := mapping.ToDomainTransaction(m)
			assert.Error(t, err)
		})
	}
}

func TestToModelTransaction_WritesCanonicalEnum(t *testing.T) {
	d := domain.Transaction{
		ID:       2,
		Type:     domain.Expense,
		Category: "Groceries",
		Amount:   decimal.RequireFromString("40.5"),
		Date:     domain.NewDate(2023, time.November, 15),
	}

	m := mapping.ToModelTransaction(d)
	assert.Equal(t, "Expense", m.Type)
	assert.Equal(t, json.Number("40.5"), m.Amount)
	assert.Equal(t, "2023-11-15", m.Date)

	// The persisted form keeps amounts as bare JSON numbers.
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amount":40.5`)
}

func TestToDomainTransactionSlice_SeparatesBadRows(t *testing.T) {
	ms := []models.Transaction{
		{ID: 1, Type: "Income", Category: "Salary", Amount: json.Number("500"), Date: "2023-11-14"},
		{ID: 2, Type: "???", Category: "Bills", Amount: json.Number("20"), Date: "2023-11-15"},
		{ID: 3, Type: "Debit", Category: "Groceries", Amount: json.Number("40"), Date: "2023-11-16"},
	}

	ds, errs := mapping.ToDomainTransactionSlice(ms)
	require.Len(t, ds, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, int64(1), ds[0].ID)
	assert.Equal(t, int64(3), ds[1].ID)
	assert.Equal(t, domain.Expense, ds[1].Type)
}
