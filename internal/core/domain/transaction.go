package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// ParseTransactionType resolves a user-supplied type string to the canonical enum.
// Matching is case-insensitive. The legacy Credit/Debit naming used by early
// stored data maps onto Income/Expense.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "credit":
		return Income, true
	case "expense", "debit":
		return Expense, true
	}
	return "", false
}

// Transaction is a single dated income or expense record.
// Amount is always a non-negative magnitude; direction comes from Type.
type Transaction struct {
	ID       int64           `json:"id"` // creation time in milliseconds, unique, monotonically increasing
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     Date            `json:"date"`
}

// SignedAmount returns the amount with the sign implied by the transaction type
// (Income positive, Expense negative).
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionPatch carries the subset of fields an edit may change.
// Nil fields are left untouched.
type TransactionPatch struct {
	Type     *TransactionType
	Category *string
	Amount   *decimal.Decimal
	Date     *Date
}

// SortNewestFirst orders a transaction list by descending ID, in place.
// The stored list has no guaranteed order; consumers that care must sort.
func SortNewestFirst(txns []Transaction) {
	sort.Slice(txns, func(i, j int) bool { return txns[i].ID > txns[j].ID })
}
