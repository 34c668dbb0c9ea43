package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/dto"
	"github.com/hishab-app/hishab_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// suggestionHandler handles HTTP requests for category suggestion lists.
type suggestionHandler struct {
	suggestionService portssvc.SuggestionSvcFacade
	defaultLocale     domain.Locale
}

// newSuggestionHandler creates a new suggestionHandler.
func newSuggestionHandler(ss portssvc.SuggestionSvcFacade, defaultLocale domain.Locale) *suggestionHandler {
	return &suggestionHandler{
		suggestionService: ss,
		defaultLocale:     defaultLocale,
	}
}

// registerSuggestionRoutes registers routes related to category suggestions.
func registerSuggestionRoutes(rg *gin.RouterGroup, suggestionService portssvc.SuggestionSvcFacade, defaultLocale domain.Locale) {
	h := newSuggestionHandler(suggestionService, defaultLocale)

	suggestions := rg.Group("/suggestions")
	{
		suggestions.GET("/:type", h.listSuggestions)
		suggestions.POST("/:type", h.addSuggestion)
	}
}

func (h *suggestionHandler) localeParam(c *gin.Context) domain.Locale {
	switch c.Query("lang") {
	case "en":
		return domain.LocaleEnglish
	case "bn":
		return domain.LocaleBengali
	}
	return h.defaultLocale
}

// listSuggestions godoc
// @Summary List category suggestions
// @Description Returns the built-in defaults for the type and locale followed by the persisted custom entries
// @Tags suggestions
// @Produce  json
// @Param   type path  string true  "Transaction type" Enums(Income, Expense)
// @Param   lang query string false "Locale for the built-in defaults" Enums(en, bn)
// @Success 200 {object} dto.SuggestionListResponse
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /suggestions/{type} [get]
func (h *suggestionHandler) listSuggestions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txType, ok := domain.ParseTransactionType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type: must be Income or Expense"})
		return
	}

	suggestions, err := h.suggestionService.ListSuggestions(c.Request.Context(), txType, h.localeParam(c))
	if err != nil {
		logger.Error("Failed to list suggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suggestions"})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionListResponse{
		Type:        string(txType),
		Suggestions: suggestions,
	})
}

// addSuggestion godoc
// @Summary Add a custom category suggestion
// @Description Appends a trimmed custom suggestion. Blank input and case-insensitive duplicates are silently discarded; the refreshed combined list is returned either way.
// @Tags suggestions
// @Accept  json
// @Produce  json
// @Param   type path string true "Transaction type" Enums(Income, Expense)
// @Param   lang query string false "Locale for the built-in defaults" Enums(en, bn)
// @Param   suggestion body dto.AddSuggestionRequest true "Suggestion text"
// @Success 200 {object} dto.SuggestionListResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /suggestions/{type} [post]
func (h *suggestionHandler) addSuggestion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txType, ok := domain.ParseTransactionType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction type: must be Income or Expense"})
		return
	}

	var req dto.AddSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSuggestion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	locale := h.localeParam(c)
	if err := h.suggestionService.AddSuggestion(c.Request.Context(), txType, locale, req.Text); err != nil {
		logger.Error("Failed to add suggestion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add suggestion"})
		return
	}

	suggestions, err := h.suggestionService.ListSuggestions(c.Request.Context(), txType, locale)
	if err != nil {
		logger.Error("Failed to list suggestions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list suggestions"})
		return
	}

	c.JSON(http.StatusOK, dto.SuggestionListResponse{
		Type:        string(txType),
		Suggestions: suggestions,
	})
}
