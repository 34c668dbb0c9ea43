package services_test

import (
	"context"
	"testing"

	"github.com/hishab-app/hishab_backend/internal/core/domain"
	"github.com/hishab-app/hishab_backend/internal/core/services"
	portssvc "github.com/hishab-app/hishab_backend/internal/core/ports/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockSuggestionRepository is a mock type for the SuggestionRepositoryFacade interface
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) LoadCustom(ctx context.Context, txType domain.TransactionType) ([]string, error) {
	args := m.Called(ctx, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSuggestionRepository) SaveCustom(ctx context.Context, txType domain.TransactionType, suggestions []string) error {
	args := m.Called(ctx, txType, suggestions)
	return args.Error(0)
}

// --- Test Suite Setup ---

type SuggestionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSuggestionRepository
	service  portssvc.SuggestionSvcFacade
}

func (suite *SuggestionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSuggestionRepository)
	suite.service = services.NewSuggestionService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *SuggestionServiceTestSuite) TestListSuggestions_DefaultsFirstThenCustom() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Income).Return([]string{"Freelance"}, nil).Once()

	got, err := suite.service.ListSuggestions(ctx, domain.Income, domain.LocaleEnglish)

	suite.Require().NoError(err)
	suite.Equal([]string{"Salary", "Gift", "Bonus", "Interest", "Freelance"}, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestListSuggestions_BengaliDefaults() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Expense).Return([]string{}, nil).Once()

	got, err := suite.service.ListSuggestions(ctx, domain.Expense, domain.LocaleBengali)

	suite.Require().NoError(err)
	suite.Equal([]string{"মুদিখানা", "কেনাকাটা", "বিল", "পরিবহন"}, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestListSuggestions_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Income).Return(nil, assert.AnError).Once()

	got, err := suite.service.ListSuggestions(ctx, domain.Income, domain.LocaleEnglish)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_AppendsTrimmed() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Expense).Return([]string{"Rent"}, nil).Once()
	suite.mockRepo.On("SaveCustom", ctx, domain.Expense, []string{"Rent", "Fuel"}).Return(nil).Once()

	err := suite.service.AddSuggestion(ctx, domain.Expense, domain.LocaleEnglish, "  Fuel  ")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_BlankIsSilentlyDiscarded() {
	ctx := context.Background()

	err := suite.service.AddSuggestion(ctx, domain.Income, domain.LocaleEnglish, "   ")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "LoadCustom", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustom", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_DuplicateOfDefaultIsIgnored() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Income).Return([]string{}, nil).Once()

	// "salary" is a case-insensitive duplicate of the built-in "Salary".
	err := suite.service.AddSuggestion(ctx, domain.Income, domain.LocaleEnglish, "salary")

	suite.Require().NoError(err, "a duplicate is discarded, not an error")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustom", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_DuplicateOfCustomIsIgnored() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Expense).Return([]string{"Rent"}, nil).Once()

	err := suite.service.AddSuggestion(ctx, domain.Expense, domain.LocaleEnglish, "RENT")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCustom", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_DefaultDuplicateCheckIsLocaleAware() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Income).Return([]string{}, nil).Once()
	suite.mockRepo.On("SaveCustom", ctx, domain.Income, []string{"Salary"}).Return(nil).Once()

	// Against the Bengali defaults "Salary" is not a duplicate.
	err := suite.service.AddSuggestion(ctx, domain.Income, domain.LocaleBengali, "Salary")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SuggestionServiceTestSuite) TestAddSuggestion_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("LoadCustom", ctx, domain.Expense).Return([]string{}, nil).Once()
	suite.mockRepo.On("SaveCustom", ctx, domain.Expense, []string{"Fuel"}).Return(assert.AnError).Once()

	err := suite.service.AddSuggestion(ctx, domain.Expense, domain.LocaleEnglish, "Fuel")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSuggestionServiceSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}
