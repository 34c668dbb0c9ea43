// Package ledger holds the pure aggregation calculations over transaction
// lists. Every function is deterministic given its inputs and never mutates
// the list it is handed; all aggregates are recomputed from the full list on
// every call rather than cached.
package ledger

import (
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TotalsByType sums amounts over the whole list partitioned by type. It is
// month-agnostic: every transaction counts regardless of date.
func TotalsByType(txns []domain.Transaction) domain.Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range txns {
		switch tx.Type {
		case domain.Income:
			income = income.Add(tx.Amount)
		case domain.Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return domain.Summary{
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Balance:      income.Sub(expense),
	}
}

// DailySeriesForMonth buckets the given month's transactions per day of month.
// Index 0 is day 1; the slice length is the number of days in the month.
// Each bucket is constructed independently so that mutating one day can never
// leak into another.
func DailySeriesForMonth(txns []domain.Transaction, year int, month time.Month) []domain.DayBucket {
	series := make([]domain.DayBucket, domain.DaysInMonth(year, month))
	for i := range series {
		series[i] = domain.DayBucket{Credit: decimal.Zero, Debit: decimal.Zero}
	}

	for _, tx := range txns {
		if tx.Date.Year != year || tx.Date.Month != month {
			continue
		}
		day := tx.Date.Day - 1 // zero-based index
		switch tx.Type {
		case domain.Income:
			series[day].Credit = series[day].Credit.Add(tx.Amount)
		case domain.Expense:
			series[day].Debit = series[day].Debit.Add(tx.Amount)
		}
	}
	return series
}

// CumulativeBalanceForMonth returns the running signed balance per day of the
// given month. Each in-month transaction adds its signed amount to every index
// from its day onward (a forward fill), which handles same-day transactions
// additively and independently of list order.
func CumulativeBalanceForMonth(txns []domain.Transaction, year int, month time.Month) []decimal.Decimal {
	days := domain.DaysInMonth(year, month)
	cumulative := make([]decimal.Decimal, days)
	for i := range cumulative {
		cumulative[i] = decimal.Zero
	}

	for _, tx := range txns {
		if tx.Date.Year != year || tx.Date.Month != month {
			continue
		}
		amount := tx.SignedAmount()
		for i := tx.Date.Day - 1; i < days; i++ {
			cumulative[i] = cumulative[i].Add(amount)
		}
	}
	return cumulative
}

// GroupByMonthAndCategory buckets transactions of the given type by calendar
// year-month ("YYYY-MM", zero-padded), then by category, summing amounts.
func GroupByMonthAndCategory(txns []domain.Transaction, txType domain.TransactionType) map[string]map[string]decimal.Decimal {
	grouped := make(map[string]map[string]decimal.Decimal)
	for _, tx := range txns {
		if tx.Type != txType {
			continue
		}
		key := tx.Date.MonthKey()
		byCategory, ok := grouped[key]
		if !ok {
			byCategory = make(map[string]decimal.Decimal)
			grouped[key] = byCategory
		}
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
	}
	return grouped
}

// CategoryTotals merges transactions of the given type that share a category
// label, summing amounts and preserving first-seen category order.
func CategoryTotals(txns []domain.Transaction, txType domain.TransactionType) []domain.CategoryAmount {
	totals := make([]domain.CategoryAmount, 0)
	index := make(map[string]int)
	for _, tx := range txns {
		if tx.Type != txType {
			continue
		}
		if i, ok := index[tx.Category]; ok {
			totals[i].Amount = totals[i].Amount.Add(tx.Amount)
			continue
		}
		index[tx.Category] = len(totals)
		totals = append(totals, domain.CategoryAmount{Category: tx.Category, Amount: tx.Amount})
	}
	return totals
}
