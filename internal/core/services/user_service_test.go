package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "cashier1").
		Return(nil, apperrors.ErrNotFound).Once()

	var savedHash string
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "cashier1" &&
			u.Name == "Ana Torres" &&
			uuid.Validate(u.UserID) == nil &&
			u.CreatedBy == creatorUserID
	}), mock.MatchedBy(func(hash string) bool {
		savedHash = hash
		return hash != "" && hash != "s3cret-pass"
	})).Return(nil).Once()

	req := dto.CreateUserRequest{Username: " cashier1 ", Name: "Ana Torres", Password: "s3cret-pass"}

	created, err := suite.service.CreateUser(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("cashier1", created.Username)
	suite.True(utils.CheckPasswordHash("s3cret-pass", savedHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_RejectsBlankUsername() {
	ctx := context.Background()

	req := dto.CreateUserRequest{Username: "   ", Name: "Ana", Password: "s3cret-pass"}

	_, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "cashier1").
		Return(&domain.User{UserID: uuid.NewString(), Username: "cashier1"}, nil).Once()

	req := dto.CreateUserRequest{Username: "cashier1", Name: "Ana", Password: "s3cret-pass"}

	_, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	deleterUserID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUser", ctx, userID, deleterUserID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, deleterUserID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("DeleteUser", ctx, mock.Anything, mock.Anything).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_ReturnsRepoResult() {
	ctx := context.Background()

	suite.mockUserRepo.On("ListUsers", ctx).
		Return([]domain.User{{UserID: uuid.NewString(), Username: "cashier1"}}, nil).Once()

	got, err := suite.service.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("cashier1", got[0].Username)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
