package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portsrepo "github.com/hishab-app/hishab_backend/internal/core/ports/repositories"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/utils/ledger"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingSvcFacade interface. Every report
// is recomputed from the full stored list on each call; no aggregate is ever
// cached or persisted.
type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service over the transaction
// repository.
func NewReportingService(txnRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo: txnRepo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) loadAll(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.LoadAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for reporting")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

// Summary returns all-time income and expense totals and the balance.
func (s *reportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	txns, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := ledger.TotalsByType(txns)

	s.LogDebug(ctx, "Summary computed", slog.Int("transaction_count", len(txns)))
	return &summary, nil
}

// DailySeries returns per-day credit/debit buckets for a calendar month.
func (s *reportingService) DailySeries(ctx context.Context, year int, month time.Month) ([]domain.DayBucket, error) {
	txns, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	series := ledger.DailySeriesForMonth(txns, year, month)

	s.LogDebug(ctx, "Daily series computed",
		slog.Int("year", year),
		slog.Int("month", int(month)),
		slog.Int("days", len(series)))
	return series, nil
}

// CumulativeBalance returns the running signed balance per day of a month.
func (s *reportingService) CumulativeBalance(ctx context.Context, year int, month time.Month) ([]decimal.Decimal, error) {
	txns, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.CumulativeBalanceForMonth(txns, year, month), nil
}

// MonthlyCategoryBreakdown groups a type's transactions by month key and
// category, summing amounts.
func (s *reportingService) MonthlyCategoryBreakdown(ctx context.Context, txType domain.TransactionType) (map[string]map[string]decimal.Decimal, error) {
	txns, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := ledger.GroupByMonthAndCategory(txns, txType)

	s.LogDebug(ctx, "Monthly category breakdown computed",
		slog.String("type", string(txType)),
		slog.Int("month_count", len(grouped)))
	return grouped, nil
}

// CategoryTotals merges a type's transactions per category label, preserving
// first-seen order.
func (s *reportingService) CategoryTotals(ctx context.Context, txType domain.TransactionType) ([]domain.CategoryAmount, error) {
	txns, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.CategoryTotals(txns, txType), nil
}
