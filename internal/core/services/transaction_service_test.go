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
	"github.com/shwefx/money_changer_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByDate(ctx context.Context, date time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetDayTotals(ctx context.Context, date time.Time) (domain.DayTotals, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(domain.DayTotals), args.Error(1)
}

func (m *MockTransactionRepository) GetFxFlowsByDate(ctx context.Context, date time.Time) (map[string]domain.FxFlow, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.FxFlow), args.Error(1)
}

// --- Mock BalanceSvcFacade ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) SetOpening(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error) {
	args := m.Called(ctx, date, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBalance), args.Error(1)
}

func (m *MockBalanceService) CloseDay(ctx context.Context, date time.Time, amount decimal.Decimal) (*domain.DailyBalance, error) {
	args := m.Called(ctx, date, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBalance), args.Error(1)
}

func (m *MockBalanceService) ReopenDay(ctx context.Context, date time.Time) (*domain.DailyBalance, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBalance), args.Error(1)
}

func (m *MockBalanceService) GetBalance(ctx context.Context, date time.Time) (*domain.BalanceSnapshot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceService) IsDayClosed(ctx context.Context, date time.Time) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockBalanceService) OpenFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	args := m.Called(ctx, date, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxBalance), args.Error(1)
}

func (m *MockBalanceService) CloseFx(ctx context.Context, date time.Time, currencyCode string, amount decimal.Decimal) (*domain.FxBalance, error) {
	args := m.Called(ctx, date, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxBalance), args.Error(1)
}

func (m *MockBalanceService) DeleteFx(ctx context.Context, date time.Time, currencyCode string) error {
	args := m.Called(ctx, date, currencyCode)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockBalanceSvc   *MockBalanceService
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockBalanceSvc = new(MockBalanceService)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo, suite.mockCurrencyRepo, suite.mockBalanceSvc, time.UTC)
}

func usd() *domain.Currency {
	return &domain.Currency{
		Code:     "USD",
		Name:     "US Dollar",
		BuyRate:  decimal.RequireFromString("2090"),
		SellRate: decimal.RequireFromString("2105"),
		IsActive: true,
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SnapshotsBuyRate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          "buy",
		CurrencyCode:  "usd",
		ForeignAmount: decimal.RequireFromString("100"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd(), nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, mock.Anything).Return(false, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		return t.Type == domain.TransactionBuy &&
			t.CurrencyCode == "USD" &&
			t.Rate.Equal(decimal.RequireFromString("2090")) &&
			t.MMKAmount.Equal(decimal.RequireFromString("209000"))
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, "cashier1")

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionBuy, txn.Type)
	suite.Require().NotNil(txn.CreatedBy)
	suite.Equal("cashier1", *txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RoundsLocalAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          "SELL",
		CurrencyCode:  "USD",
		ForeignAmount: decimal.RequireFromString("33.333"),
	}
	currency := usd()
	currency.SellRate = decimal.RequireFromString("3.003")

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(currency, nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, mock.Anything).Return(false, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t *domain.Transaction) bool {
		// 33.333 * 3.003 = 100.098999, rounded half-up to 100.10
		return t.MMKAmount.Equal(decimal.RequireFromString("100.10"))
	})).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, "")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DayClosed() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          "BUY",
		CurrencyCode:  "USD",
		ForeignAmount: decimal.RequireFromString("50"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd(), nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, mock.Anything).Return(true, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDayClosed)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveCurrency() {
	ctx := context.Background()
	currency := usd()
	currency.IsActive = false
	req := dto.CreateTransactionRequest{
		Type:          "BUY",
		CurrencyCode:  "USD",
		ForeignAmount: decimal.RequireFromString("10"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(currency, nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:          "BUY",
		CurrencyCode:  "USD",
		ForeignAmount: decimal.Zero,
	}

	_, err := suite.service.CreateTransaction(ctx, req, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_RecomputesLocalAmount() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		ID:            7,
		BusinessDate:  date,
		Type:          domain.TransactionBuy,
		CurrencyCode:  "USD",
		ForeignAmount: decimal.RequireFromString("100"),
		Rate:          decimal.RequireFromString("2090"),
		MMKAmount:     decimal.RequireFromString("209000"),
	}
	newAmount := decimal.RequireFromString("150")

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, date).Return(false, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ForeignAmount.Equal(newAmount) && t.MMKAmount.Equal(decimal.RequireFromString("313500"))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, 7, dto.UpdateTransactionRequest{ForeignAmount: &newAmount})

	suite.Require().NoError(err)
	suite.True(updated.MMKAmount.Equal(decimal.RequireFromString("313500")))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DayClosed() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{ID: 7, BusinessDate: date, Type: domain.TransactionBuy}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(7)).Return(existing, nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, date).Return(true, nil).Once()

	_, err := suite.service.UpdateTransaction(ctx, 7, dto.UpdateTransactionRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDayClosed)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_DayClosed() {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{ID: 9, BusinessDate: date, Type: domain.TransactionSell}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, int64(9)).Return(existing, nil).Once()
	suite.mockBalanceSvc.On("IsDayClosed", ctx, date).Return(true, nil).Once()

	err := suite.service.DeleteTransaction(ctx, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDayClosed)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RecentWhenNoDate() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListRecentTransactions", ctx, 100).Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, nil)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
