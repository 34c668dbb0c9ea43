package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/hishab-app/hishab_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockReportingService) DailySeries(ctx context.Context, year int, month time.Month) ([]domain.DayBucket, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayBucket), args.Error(1)
}

func (m *MockReportingService) CumulativeBalance(ctx context.Context, year int, month time.Month) ([]decimal.Decimal, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) MonthlyCategoryBreakdown(ctx context.Context, txType domain.TransactionType) (map[string]map[string]decimal.Decimal, error) {
	args := m.Called(ctx, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) CategoryTotals(ctx context.Context, txType domain.TransactionType) ([]domain.CategoryAmount, error) {
	args := m.Called(ctx, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryAmount), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---

type ReportingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportingService
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockReportingService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Reporting: suite.mockService,
	})
}

func (suite *ReportingHandlerTestSuite) performGet(path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	suite.Require().NoError(err)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ReportingHandlerTestSuite) TestGetSummary() {
	summary := &domain.Summary{
		IncomeTotal:  decimal.NewFromInt(700),
		ExpenseTotal: decimal.NewFromInt(150),
		Balance:      decimal.NewFromInt(550),
	}
	suite.mockService.On("Summary", mock.Anything).Return(summary, nil).Once()

	w := suite.performGet("/api/v1/reports/summary")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IncomeTotal.Equal(decimal.NewFromInt(700)))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(550)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetDailySeries_ExplicitMonth() {
	series := []domain.DayBucket{
		{Credit: decimal.NewFromInt(500), Debit: decimal.Zero},
		{Credit: decimal.Zero, Debit: decimal.NewFromInt(40)},
	}
	suite.mockService.On("DailySeries", mock.Anything, 2024, time.May).Return(series, nil).Once()

	w := suite.performGet("/api/v1/reports/daily?year=2024&month=5")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DailySeriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2024, resp.Year)
	suite.Equal(5, resp.Month)
	suite.Require().Len(resp.Days, 2)
	suite.True(resp.Days[0].Credit.Equal(decimal.NewFromInt(500)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetDailySeries_DefaultsToCurrentMonth() {
	now := time.Now()
	suite.mockService.On("DailySeries", mock.Anything, now.Year(), now.Month()).
		Return([]domain.DayBucket{}, nil).Once()

	w := suite.performGet("/api/v1/reports/daily")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetDailySeries_InvalidMonth() {
	for _, path := range []string{
		"/api/v1/reports/daily?month=0",
		"/api/v1/reports/daily?month=13",
		"/api/v1/reports/daily?month=abc",
		"/api/v1/reports/daily?year=-1",
	} {
		w := suite.performGet(path)
		suite.Equal(http.StatusBadRequest, w.Code, "path %s", path)
	}
	suite.mockService.AssertNotCalled(suite.T(), "DailySeries", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestGetCumulativeBalance() {
	balances := []decimal.Decimal{decimal.Zero, decimal.NewFromInt(500), decimal.NewFromInt(400)}
	suite.mockService.On("CumulativeBalance", mock.Anything, 2024, time.May).Return(balances, nil).Once()

	w := suite.performGet("/api/v1/reports/balance?year=2024&month=5")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CumulativeBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Balances, 3)
	suite.True(resp.Balances[2].Equal(decimal.NewFromInt(400)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetMonthlyCategoryBreakdown() {
	grouped := map[string]map[string]decimal.Decimal{
		"2024-05": {"Salary": decimal.NewFromInt(700)},
	}
	suite.mockService.On("MonthlyCategoryBreakdown", mock.Anything, domain.Income).Return(grouped, nil).Once()

	w := suite.performGet("/api/v1/reports/categories/monthly?type=Income")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonthlyCategoryBreakdownResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Income", resp.Type)
	suite.Require().Contains(resp.Months, "2024-05")
	suite.True(resp.Months["2024-05"]["Salary"].Equal(decimal.NewFromInt(700)))
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestGetCategoryTotals() {
	totals := []domain.CategoryAmount{
		{Category: "Groceries", Amount: decimal.NewFromInt(100)},
		{Category: "Bills", Amount: decimal.NewFromInt(50)},
	}
	suite.mockService.On("CategoryTotals", mock.Anything, domain.Expense).Return(totals, nil).Once()

	w := suite.performGet("/api/v1/reports/categories?type=Expense")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CategoryTotalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Expense", resp.Type)
	suite.Require().Len(resp.Categories, 2)
	suite.Equal("Groceries", resp.Categories[0].Category)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestTypeParam_Required() {
	for _, path := range []string{
		"/api/v1/reports/categories",
		"/api/v1/reports/categories?type=transfer",
		"/api/v1/reports/categories/monthly",
	} {
		w := suite.performGet(path)
		suite.Equal(http.StatusBadRequest, w.Code, "path %s", path)
	}
	suite.mockService.AssertNotCalled(suite.T(), "CategoryTotals", mock.Anything, mock.Anything)
	suite.mockService.AssertNotCalled(suite.T(), "MonthlyCategoryBreakdown", mock.Anything, mock.Anything)
}

func TestReportingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}
