package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/hishab-app/hishab_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to its persisted model form.
// The canonical enum is always written back, so legacy Credit/Debit records are
// migrated on the next save.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:       d.ID,
		Type:     string(d.Type),
		Category: d.Category,
		Amount:   jsonNumber(d.Amount),
		Date:     d.Date.String(),
	}
}

// ToModelTransactionSlice converts a slice of domain Transactions to model form.
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}

// ToDomainTransaction converts a persisted model Transaction to its domain
// form, normalizing legacy type strings (Credit/Debit) to Income/Expense.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	txType, ok := domain.ParseTransactionType(m.Type)
	if !ok {
		return domain.Transaction{}, fmt.Errorf("unknown transaction type %q for id %d", m.Type, m.ID)
	}

	amount, err := decimal.NewFromString(m.Amount.String())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid amount %q for id %d: %w", m.Amount, m.ID, err)
	}

	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid date for id %d: %w", m.ID, err)
	}

	return domain.Transaction{
		ID:       m.ID,
		Type:     txType,
		Category: m.Category,
		Amount:   amount,
		Date:     date,
	}, nil
}

// ToDomainTransactionSlice converts persisted Transactions to domain form.
// Rows that fail conversion are returned separately so the caller can log and
// drop them instead of failing the whole load.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, []error) {
	ds := make([]domain.Transaction, 0, len(ms))
	var errs []error
	for _, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ds = append(ds, d)
	}
	return ds, errs
}

func jsonNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
