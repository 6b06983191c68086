package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/core/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "operator", Password: "s3cret-pass", Name: "Back Office"}

	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "operator" &&
			user.UserID != "" &&
			user.PasswordHash != "" &&
			user.PasswordHash != "s3cret-pass"
	})).Return(nil).Once()

	created, err := s.service.CreateUser(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Equal("operator", created.Username)
	s.Equal("Back Office", created.Name)
	s.True(utils.CheckPasswordHash("s3cret-pass", created.PasswordHash))
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "operator", Password: "s3cret-pass"}

	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	created, err := s.service.CreateUser(ctx, req)

	s.Require().Error(err)
	s.Nil(created)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	user := &domain.User{UserID: "u-1", Username: "operator", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByUsername", ctx, "operator").Return(user, nil).Once()

	authenticated, err := s.service.AuthenticateUser(ctx, "operator", "correct-horse")

	s.Require().NoError(err)
	s.Equal("u-1", authenticated.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	user := &domain.User{UserID: "u-1", Username: "operator", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByUsername", ctx, "operator").Return(user, nil).Once()

	authenticated, err := s.service.AuthenticateUser(ctx, "operator", "wrong")

	s.Require().Error(err)
	s.Nil(authenticated)
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(401, appErr.Code)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUserSameError() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authenticated, err := s.service.AuthenticateUser(ctx, "ghost", "whatever")

	s.Require().Error(err)
	s.Nil(authenticated)

	// Unknown user and wrong password must be indistinguishable.
	var appErr *apperrors.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal(401, appErr.Code)
	s.Equal("invalid username or password", appErr.Message)
	s.False(errors.Is(err, apperrors.ErrNotFound))
}
