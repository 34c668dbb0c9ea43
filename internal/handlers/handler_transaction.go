package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hishab-app/hishab_backend/internal/apperrors"
	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/dto"
	"github.com/hishab-app/hishab_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
		transactions.DELETE("", h.clearTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Validates and appends a new income or expense record
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction draft"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists stored transactions, optionally filtered by date, date range, named relative range, type and category. At most one date mode applies: an exact date wins over an explicit range, which wins over a relative range. With recent=N the newest N records are returned instead, unfiltered.
// @Tags transactions
// @Produce  json
// @Param   date     query string false "Exact date (YYYY-MM-DD)"
// @Param   from     query string false "Range start (YYYY-MM-DD, requires to)"
// @Param   to       query string false "Range end (YYYY-MM-DD, requires from)"
// @Param   range    query string false "Relative range" Enums(today, thisMonth, last7Days, last15Days, lastMonth)
// @Param   type     query string false "Transaction type" Enums(Income, Expense)
// @Param   category query string false "Exact category label"
// @Param   recent   query int    false "Return only the N newest records"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if recentStr := c.Query("recent"); recentStr != "" {
		limit, err := strconv.Atoi(recentStr)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recent parameter: must be a positive integer"})
			return
		}
		txns, err := h.transactionService.RecentTransactions(c.Request.Context(), limit)
		if err != nil {
			logger.Error("Failed to list recent transactions", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
			return
		}
		c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
		return
	}

	filter, err := buildTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// buildTransactionFilter resolves the query parameters into a filter. The
// date modes are mutually exclusive: an exact date wins over an explicit
// range, which wins over a relative range.
func buildTransactionFilter(c *gin.Context) (domain.TransactionFilter, error) {
	var filter domain.TransactionFilter

	switch {
	case c.Query("date") != "":
		exact, err := domain.ParseDate(c.Query("date"))
		if err != nil {
			return filter, err
		}
		filter.Date = domain.ExactDateFilter(exact)
	case c.Query("from") != "" && c.Query("to") != "":
		from, err := domain.ParseDate(c.Query("from"))
		if err != nil {
			return filter, err
		}
		to, err := domain.ParseDate(c.Query("to"))
		if err != nil {
			return filter, err
		}
		filter.Date = domain.RangeDateFilter(from, to)
	case c.Query("range") != "":
		relative, ok := domain.ParseRelativeRange(c.Query("range"))
		if !ok {
			return filter, errors.New("unknown relative range: " + c.Query("range"))
		}
		filter.Date = domain.RelativeDateFilter(relative)
	}

	if typeStr := c.Query("type"); typeStr != "" {
		txType, ok := domain.ParseTransactionType(typeStr)
		if !ok {
			return filter, errors.New("unknown transaction type: " + typeStr)
		}
		filter.Type = txType
	}
	filter.Category = c.Query("category")

	return filter, nil
}

// updateTransaction godoc
// @Summary Edit a transaction
// @Description Merges the provided fields over the stored record. An unknown ID is a no-op and still returns the full list.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path int true "Transaction ID"
// @Param   patch body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txns, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update transaction", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the record with the given ID. An unknown ID is a no-op and still returns the full list. Confirmation is the caller's responsibility; deletion is immediate and destructive.
// @Tags transactions
// @Produce  json
// @Param   transactionID path int true "Transaction ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid transaction ID"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID"})
		return
	}

	txns, err := h.transactionService.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to delete transaction", slog.Int64("transaction_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// clearTransactions godoc
// @Summary Delete all transactions
// @Description Removes the entire stored list. Confirmation is the caller's responsibility; the operation is immediate and destructive.
// @Tags transactions
// @Success 204 "All transactions removed"
// @Router /transactions [delete]
func (h *transactionHandler) clearTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.transactionService.ClearTransactions(c.Request.Context()); err != nil {
		logger.Error("Failed to clear transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear transactions"})
		return
	}

	c.Status(http.StatusNoContent)
}
