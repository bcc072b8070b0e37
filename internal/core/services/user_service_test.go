package services_test

import (
	"context"
	"testing"

	"github.com/shwefx/money_changer_app/internal/apperrors"
	"github.com/shwefx/money_changer_app/internal/core/domain"
	portssvc "github.com/shwefx/money_changer_app/internal/core/ports/services"
	"github.com/shwefx/money_changer_app/internal/core/services"
	"github.com/shwefx/money_changer_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		ID:           1,
		Username:     "admin",
		FullName:     "Shop Admin",
		PasswordHash: hash,
		Role:         "admin",
		IsActive:     true,
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.activeUser("s3cret")

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	authenticated, err := suite.service.Authenticate(ctx, "admin", "s3cret")

	suite.Require().NoError(err)
	suite.Equal(user.ID, authenticated.ID)
	suite.Equal("admin", authenticated.Role)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("s3cret")

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "admin", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	// Unknown usernames read the same as wrong passwords.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveAccount() {
	ctx := context.Background()
	user := suite.activeUser("s3cret")
	user.IsActive = false

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(user, nil).Once()

	_, err := suite.service.Authenticate(ctx, "admin", "s3cret")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByID", ctx, int64(42)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, int64(42))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
