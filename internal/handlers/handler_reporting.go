package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/dto"
	"github.com/hishab-app/hishab_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the derived report views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/daily", h.getDailySeries)
		reports.GET("/balance", h.getCumulativeBalance)
		reports.GET("/categories/monthly", h.getMonthlyCategoryBreakdown)
		reports.GET("/categories", h.getCategoryTotals)
	}
}

// yearMonthParams resolves the year/month query parameters, defaulting to the
// current calendar month.
func yearMonthParams(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
			return 0, 0, false
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter: must be 1-12"})
			return 0, 0, false
		}
		month = time.Month(parsed)
	}
	return year, month, true
}

// typeParam resolves the required type query parameter.
func typeParam(c *gin.Context) (domain.TransactionType, bool) {
	txType, ok := domain.ParseTransactionType(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing type parameter: must be Income or Expense"})
		return "", false
	}
	return txType, true
}

// getSummary godoc
// @Summary All-time totals
// @Description Returns the all-time income total, expense total and balance
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getDailySeries godoc
// @Summary Per-day activity of a month
// @Description Returns credit/debit buckets per day of the requested month (defaults to the current month). Element 0 is day 1.
// @Tags reports
// @Produce  json
// @Param   year  query int false "Calendar year (defaults to current)"
// @Param   month query int false "Calendar month 1-12 (defaults to current)"
// @Success 200 {object} dto.DailySeriesResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Router /reports/daily [get]
func (h *reportingHandler) getDailySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	series, err := h.reportingService.DailySeries(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to compute daily series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily series"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDailySeriesResponse(year, int(month), series))
}

// getCumulativeBalance godoc
// @Summary Running balance of a month
// @Description Returns the cumulative signed balance per day of the requested month (defaults to the current month)
// @Tags reports
// @Produce  json
// @Param   year  query int false "Calendar year (defaults to current)"
// @Param   month query int false "Calendar month 1-12 (defaults to current)"
// @Success 200 {object} dto.CumulativeBalanceResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Router /reports/balance [get]
func (h *reportingHandler) getCumulativeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	balances, err := h.reportingService.CumulativeBalance(c.Request.Context(), year, month)
	if err != nil {
		logger.Error("Failed to compute cumulative balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cumulative balance"})
		return
	}

	c.JSON(http.StatusOK, dto.CumulativeBalanceResponse{
		Year:     year,
		Month:    int(month),
		Balances: balances,
	})
}

// getMonthlyCategoryBreakdown godoc
// @Summary Month/category breakdown of one type
// @Description Groups one type's transactions by "YYYY-MM" month key and category, summing amounts
// @Tags reports
// @Produce  json
// @Param   type query string true "Transaction type" Enums(Income, Expense)
// @Success 200 {object} dto.MonthlyCategoryBreakdownResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /reports/categories/monthly [get]
func (h *reportingHandler) getMonthlyCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txType, ok := typeParam(c)
	if !ok {
		return
	}

	grouped, err := h.reportingService.MonthlyCategoryBreakdown(c.Request.Context(), txType)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category breakdown"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyCategoryBreakdownResponse{
		Type:   string(txType),
		Months: grouped,
	})
}

// getCategoryTotals godoc
// @Summary Per-category totals of one type
// @Description Merges one type's transactions per category label, preserving first-seen order
// @Tags reports
// @Produce  json
// @Param   type query string true "Transaction type" Enums(Income, Expense)
// @Success 200 {object} dto.CategoryTotalsResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /reports/categories [get]
func (h *reportingHandler) getCategoryTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txType, ok := typeParam(c)
	if !ok {
		return
	}

	totals, err := h.reportingService.CategoryTotals(c.Request.Context(), txType)
	if err != nil {
		logger.Error("Failed to compute category totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute category totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryTotalsResponse(txType, totals))
}
