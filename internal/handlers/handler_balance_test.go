package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/handlers"
	"github.com/shwefx/money_changer_app/internal/middleware"
)

// --- Mock BalanceService ---
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

// Ensure mock implements the interface
var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Test Suite ---
type BalanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBalanceService *MockBalanceService
	jwtSecret          string
	cookieName         string
}

// generateTestToken creates a session token for the given role.
func (suite *BalanceHandlerTestSuite) generateTestToken(role string) string {
	claims := middleware.SessionClaims{
		Username: "tester",
		FullName: "Test User",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "mcx-test",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BalanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.cookieName = "token"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret, suite.cookieName))

	suite.mockBalanceService = new(MockBalanceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBalanceRoutes(v1, suite.mockBalanceService)
}

func (suite *BalanceHandlerTestSuite) doJSON(method, url, role string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(role))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BalanceHandlerTestSuite) TestGetBalance_Success() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	suggested := decimal.RequireFromString("1300")
	snapshot := &domain.BalanceSnapshot{
		Date: date,
		Balance: &domain.DailyBalance{
			ID:                1,
			BusinessDate:      date,
			OpeningBalanceMMK: decimal.RequireFromString("1000"),
			OpenedAt:          date,
		},
		Totals: domain.DayTotals{
			Received: decimal.RequireFromString("500"),
			PaidOut:  decimal.RequireFromString("200"),
		},
		SuggestedClosingMMK: &suggested,
	}

	suite.mockBalanceService.On("GetBalance", mock.Anything, date).Return(snapshot, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/balances?date=2025-03-10", middleware.RoleCashier, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03-10", resp["date"])
	suite.Equal(false, resp["isClosed"])
	suite.Equal("1300", resp["suggestedClosingMMK"])
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestGetBalance_MissingDate() {
	w := suite.doJSON(http.MethodGet, "/api/v1/balances", middleware.RoleCashier, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BalanceHandlerTestSuite) TestSetOpening_DayClosed() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockBalanceService.On("SetOpening", mock.Anything, date, mock.Anything).
		Return(nil, apperrors.ErrDayClosed).Once()

	body := map[string]any{"date": "2025-03-10", "openingBalanceMMK": "1000"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/open", middleware.RoleCashier, body)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *BalanceHandlerTestSuite) TestCloseDay_WithoutOpening() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	suite.mockBalanceService.On("CloseDay", mock.Anything, date, mock.Anything).
		Return(nil, apperrors.ErrPrereqMissing).Once()

	body := map[string]any{"date": "2025-03-10", "closingBalanceMMK": "900"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/close", middleware.RoleCashier, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *BalanceHandlerTestSuite) TestCloseDay_MissingAmount() {
	body := map[string]any{"date": "2025-03-10"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/close", middleware.RoleCashier, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceService.AssertNotCalled(suite.T(), "CloseDay", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceHandlerTestSuite) TestSetOpening_MissingAmount() {
	body := map[string]any{"date": "2025-03-10"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/open", middleware.RoleCashier, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceService.AssertNotCalled(suite.T(), "SetOpening", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceHandlerTestSuite) TestCloseFx_MissingAmount() {
	body := map[string]any{"date": "2025-03-10", "currency": "USD"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/close-fx", middleware.RoleAdmin, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBalanceService.AssertNotCalled(suite.T(), "CloseFx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceHandlerTestSuite) TestReopenDay_RequiresAdmin() {
	body := map[string]any{"date": "2025-03-10"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/reopen", middleware.RoleCashier, body)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockBalanceService.AssertNotCalled(suite.T(), "ReopenDay", mock.Anything, mock.Anything)
}

func (suite *BalanceHandlerTestSuite) TestOpenFx_AdminSuccess() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	fx := &domain.FxBalance{
		ID:             5,
		DailyBalanceID: 1,
		CurrencyCode:   "USD",
		OpeningAmount:  decimal.RequireFromString("100"),
	}

	suite.mockBalanceService.On("OpenFx", mock.Anything, date, "USD", mock.Anything).
		Return(fx, nil).Once()

	body := map[string]any{"date": "2025-03-10", "currency": "USD", "openingAmount": "100"}
	w := suite.doJSON(http.MethodPost, "/api/v1/balances/open-fx", middleware.RoleAdmin, body)

	suite.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp["currency"])
	suite.mockBalanceService.AssertExpectations(suite.T())
}

func (suite *BalanceHandlerTestSuite) TestRequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/balances?date=2025-03-10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestBalanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceHandlerTestSuite))
}
