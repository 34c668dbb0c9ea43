package services

import (
	"context"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines operations for the derived views of the
// transaction list. Nothing here is persisted; every report is recomputed
// from the full stored list on each call.
type ReportingSvcFacade interface {
	// Summary returns the all-time income and expense totals and the balance.
	Summary(ctx context.Context) (*domain.Summary, error)

	// DailySeries returns per-day credit/debit buckets for a calendar month.
	DailySeries(ctx context.Context, year int, month time.Month) ([]domain.DayBucket, error)

	// CumulativeBalance returns the running signed balance per day of a month.
	CumulativeBalance(ctx context.Context, year int, month time.Month) ([]decimal.Decimal, error)

	// MonthlyCategoryBreakdown groups a type's transactions by "YYYY-MM" month
	// key and category, summing amounts.
	MonthlyCategoryBreakdown(ctx context.Context, txType domain.TransactionType) (map[string]map[string]decimal.Decimal, error)

	// CategoryTotals merges a type's transactions per category label,
	// preserving first-seen order.
	CategoryTotals(ctx context.Context, txType domain.TransactionType) ([]domain.CategoryAmount, error)
}
