package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

type DebtServiceTestSuite struct {
	suite.Suite
	mockDebtRepo    *MockDebtRepository
	mockStandRepo   *MockStandRepository
	mockConceptRepo *MockConceptRepository
	service         portssvc.DebtSvcFacade
}

func (suite *DebtServiceTestSuite) SetupTest() {
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.mockStandRepo = new(MockStandRepository)
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.service = services.NewDebtService(suite.mockDebtRepo, suite.mockStandRepo, suite.mockConceptRepo)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	period := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockStandRepo.On("FindStandByID", ctx, int64(4)).
		Return(&domain.Stand{StandID: 4}, nil).Once()
	suite.mockConceptRepo.On("FindConceptByID", ctx, int64(3)).
		Return(&domain.Concept{ConceptID: 3}, nil).Once()

	req := dto.CreateDebtRequest{
		StandID:     4,
		Description: "July maintenance",
		LineItems: []dto.CreateDebtLineItemRequest{
			{ConceptID: 3, AmountDue: decimal.RequireFromString("120"), Period: period},
		},
	}

	suite.mockDebtRepo.On("SaveDebt", ctx, mock.MatchedBy(func(h domain.DebtHeader) bool {
		return h.StandID == 4 && h.Description == "July maintenance" && h.CreatedBy == creatorUserID
	}), mock.MatchedBy(func(items []domain.DebtLineItem) bool {
		return len(items) == 1 &&
			items[0].ConceptID == 3 &&
			items[0].StandID == 4 &&
			items[0].AmountDue.Equal(decimal.RequireFromString("120")) &&
			items[0].Period.Equal(period)
	})).Return(&domain.DebtHeader{DebtID: 1, StandID: 4}, nil).Once()

	created, err := suite.service.CreateDebt(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), created.DebtID)
	suite.mockDebtRepo.AssertExpectations(suite.T())
}

func (suite *DebtServiceTestSuite) TestCreateDebt_RejectsEmptyLineItems() {
	ctx := context.Background()

	_, err := suite.service.CreateDebt(ctx, dto.CreateDebtRequest{StandID: 4}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestCreateDebt_RejectsNonPositiveAmount() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(4)).
		Return(&domain.Stand{StandID: 4}, nil).Once()

	req := dto.CreateDebtRequest{
		StandID: 4,
		LineItems: []dto.CreateDebtLineItemRequest{
			{ConceptID: 3, AmountDue: decimal.Zero, Period: time.Now()},
		},
	}

	_, err := suite.service.CreateDebt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestCreateDebt_UnknownStand() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateDebtRequest{
		StandID: 99,
		LineItems: []dto.CreateDebtLineItemRequest{
			{ConceptID: 3, AmountDue: decimal.RequireFromString("10"), Period: time.Now()},
		},
	}

	_, err := suite.service.CreateDebt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DebtServiceTestSuite) TestCreateDebt_UnknownConcept() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(4)).
		Return(&domain.Stand{StandID: 4}, nil).Once()
	suite.mockConceptRepo.On("FindConceptByID", ctx, int64(77)).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateDebtRequest{
		StandID: 4,
		LineItems: []dto.CreateDebtLineItemRequest{
			{ConceptID: 77, AmountDue: decimal.RequireFromString("10"), Period: time.Now()},
		},
	}

	_, err := suite.service.CreateDebt(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "SaveDebt")
}

func (suite *DebtServiceTestSuite) TestGetOutstanding_ReturnsRepoResult() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(4)).
		Return(&domain.Stand{StandID: 4}, nil).Once()
	outstanding := []domain.OutstandingLineItem{
		{
			DebtLineItem:     domain.DebtLineItem{LineItemID: 11, StandID: 4, AmountDue: decimal.RequireFromString("100")},
			RemainingBalance: decimal.RequireFromString("40"),
		},
	}
	suite.mockDebtRepo.On("FindOutstandingByStand", ctx, int64(4)).
		Return(outstanding, nil).Once()

	got, err := suite.service.GetOutstanding(ctx, 4)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(got[0].RemainingBalance.Equal(decimal.RequireFromString("40")))
}

func (suite *DebtServiceTestSuite) TestGetOutstanding_UnknownStand() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOutstanding(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDebtRepo.AssertNotCalled(suite.T(), "FindOutstandingByStand")
}

func (suite *DebtServiceTestSuite) TestListDebtsByStand_ReturnsRepoResult() {
	ctx := context.Background()

	suite.mockStandRepo.On("FindStandByID", ctx, int64(4)).
		Return(&domain.Stand{StandID: 4}, nil).Once()
	suite.mockDebtRepo.On("ListDebtHeadersByStand", ctx, int64(4)).
		Return([]domain.DebtHeader{{DebtID: 2, StandID: 4}}, nil).Once()

	got, err := suite.service.ListDebtsByStand(ctx, 4)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(int64(2), got[0].DebtID)
}

func TestDebtServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DebtServiceTestSuite))
}
