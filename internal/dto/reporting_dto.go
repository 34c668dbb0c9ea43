package dto

import (
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse represents the all-time totals response.
type SummaryResponse struct {
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
	Balance      decimal.Decimal `json:"balance"`
}

// DayBucketResponse represents one day's credit/debit bucket in a daily series.
type DayBucketResponse struct {
	Credit decimal.Decimal `json:"credit"`
	Debit  decimal.Decimal `json:"debit"`
}

// DailySeriesResponse represents the per-day activity of a month.
// Days[0] is day 1 of the month.
type DailySeriesResponse struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Days  []DayBucketResponse `json:"days"`
}

// CumulativeBalanceResponse represents the running balance of a month.
type CumulativeBalanceResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Balances []decimal.Decimal `json:"balances"`
}

// MonthlyCategoryBreakdownResponse groups one type's totals by month key and
// category.
type MonthlyCategoryBreakdownResponse struct {
	Type   string                                `json:"type"`
	Months map[string]map[string]decimal.Decimal `json:"months"`
}

// CategoryAmountResponse is a category label with its summed amount.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// CategoryTotalsResponse lists one type's merged per-category totals.
type CategoryTotalsResponse struct {
	Type       string                   `json:"type"`
	Categories []CategoryAmountResponse `json:"categories"`
}

// ToSummaryResponse converts a domain.Summary to its response form.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		IncomeTotal:  s.IncomeTotal,
		ExpenseTotal: s.ExpenseTotal,
		Balance:      s.Balance,
	}
}

// ToDailySeriesResponse converts a day bucket series to its response form.
func ToDailySeriesResponse(year int, month int, series []domain.DayBucket) DailySeriesResponse {
	days := make([]DayBucketResponse, len(series))
	for i, b := range series {
		days[i] = DayBucketResponse{Credit: b.Credit, Debit: b.Debit}
	}
	return DailySeriesResponse{Year: year, Month: month, Days: days}
}

// ToCategoryTotalsResponse converts per-category totals to their response form.
func ToCategoryTotalsResponse(txType domain.TransactionType, totals []domain.CategoryAmount) CategoryTotalsResponse {
	categories := make([]CategoryAmountResponse, len(totals))
	for i, t := range totals {
		categories[i] = CategoryAmountResponse{Category: t.Category, Amount: t.Amount}
	}
	return CategoryTotalsResponse{Type: string(txType), Categories: categories}
}
