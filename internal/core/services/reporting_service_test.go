package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDailyTotals(ctx context.Context, date time.Time) (*domain.DailyReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyReport), args.Error(1)
}

func (m *MockReportingRepository) GetRangeTotals(ctx context.Context, start, end time.Time) (*domain.PeriodTotals, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) GetRangeProfitLoss(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyTxTotals(ctx context.Context, year int) (map[string]domain.PeriodTotals, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) GetMonthlyProfitLoss(ctx context.Context, year int) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetYearlyTxTotals(ctx context.Context) (map[string]domain.PeriodTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.PeriodTotals), args.Error(1)
}

func (m *MockReportingRepository) GetYearlyProfitLoss(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestMonthlyReport_MergesBothSides() {
	ctx := context.Background()

	suite.mockRepo.On("GetMonthlyTxTotals", ctx, 2025).Return(map[string]domain.PeriodTotals{
		"2025-03": {
			TotalTransactions: 12,
			TotalMMKPaidOut:   decimal.RequireFromString("300"),
			TotalMMKReceived:  decimal.RequireFromString("700"),
		},
	}, nil).Once()
	suite.mockRepo.On("GetMonthlyProfitLoss", ctx, 2025).Return(map[string]decimal.Decimal{
		"2025-03": decimal.RequireFromString("40"),
	}, nil).Once()

	summaries, err := suite.service.MonthlyReport(ctx, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 1)
	suite.Equal("2025-03", summaries[0].Period)
	suite.Equal(12, summaries[0].TotalTransactions)
	suite.True(summaries[0].ProfitLossMMK.Equal(decimal.RequireFromString("40")))
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_OneSidedPeriodsZeroFilled() {
	ctx := context.Background()

	// January has ledger activity but no closed days; February only closed days.
	suite.mockRepo.On("GetMonthlyTxTotals", ctx, 2025).Return(map[string]domain.PeriodTotals{
		"2025-01": {
			TotalTransactions: 3,
			TotalMMKPaidOut:   decimal.RequireFromString("100"),
			TotalMMKReceived:  decimal.RequireFromString("150"),
		},
	}, nil).Once()
	suite.mockRepo.On("GetMonthlyProfitLoss", ctx, 2025).Return(map[string]decimal.Decimal{
		"2025-02": decimal.RequireFromString("-25"),
	}, nil).Once()

	summaries, err := suite.service.MonthlyReport(ctx, 2025)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	// Newest first.
	suite.Equal("2025-02", summaries[0].Period)
	suite.Equal(0, summaries[0].TotalTransactions)
	suite.True(summaries[0].TotalMMKPaidOut.IsZero())
	suite.True(summaries[0].ProfitLossMMK.Equal(decimal.RequireFromString("-25")))
	suite.Equal("2025-01", summaries[1].Period)
	suite.Equal(3, summaries[1].TotalTransactions)
	suite.True(summaries[1].ProfitLossMMK.IsZero())
}

func (suite *ReportingServiceTestSuite) TestRangeReport_InvertedRange() {
	ctx := context.Background()
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.RangeReport(ctx, start, end)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetRangeTotals", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRangeReport_CombinesTotalsAndProfitLoss() {
	ctx := context.Background()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("GetRangeTotals", ctx, start, end).Return(&domain.PeriodTotals{
		TotalTransactions: 5,
		TotalMMKPaidOut:   decimal.RequireFromString("1000"),
		TotalMMKReceived:  decimal.RequireFromString("1200"),
	}, nil).Once()
	suite.mockRepo.On("GetRangeProfitLoss", ctx, start, end).
		Return(decimal.RequireFromString("200"), nil).Once()

	report, err := suite.service.RangeReport(ctx, start, end)

	suite.Require().NoError(err)
	suite.Equal(5, report.TotalTransactions)
	suite.True(report.ProfitLossMMK.Equal(decimal.RequireFromString("200")))
}

func (suite *ReportingServiceTestSuite) TestYearlyReport_SortedNewestFirst() {
	ctx := context.Background()

	suite.mockRepo.On("GetYearlyTxTotals", ctx).Return(map[string]domain.PeriodTotals{
		"2024": {TotalTransactions: 80},
		"2025": {TotalTransactions: 20},
	}, nil).Once()
	suite.mockRepo.On("GetYearlyProfitLoss", ctx).
		Return(map[string]decimal.Decimal{}, nil).Once()

	summaries, err := suite.service.YearlyReport(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal("2025", summaries[0].Period)
	suite.Equal("2024", summaries[1].Period)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
