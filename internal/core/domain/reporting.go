package domain

import (
	"github.com/shopspring/decimal"
)

// Summary holds the all-time totals shown on the overview screen.
type Summary struct {
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"` // incomeTotal - expenseTotal
}

// DayBucket accumulates the credit (income) and debit (expense) totals for a
// single day of a month.
type DayBucket struct {
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

// CategoryAmount is a category label with its summed amount, used by the
// per-category chart breakdowns.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
