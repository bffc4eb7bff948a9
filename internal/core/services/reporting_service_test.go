package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	location          *time.Location
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)

	var err error
	suite.location, err = time.LoadLocation("America/Lima")
	suite.Require().NoError(err)

	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.location)
}

func (suite *ReportingServiceTestSuite) TestQueryIncomeReceipts_WidensDatesToWholeDays() {
	ctx := context.Background()

	params := dto.IncomeReceiptReportParams{
		DateFrom: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	}

	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, suite.location)
	wantToExclusive := time.Date(2026, 8, 16, 0, 0, 0, 0, suite.location)

	suite.mockReportingRepo.On("ListIncomeReceiptReports", ctx, mock.MatchedBy(func(f portsrepo.IncomeReceiptReportFilter) bool {
		return f.DateFrom.Equal(wantFrom) &&
			f.DateToExclusive.Equal(wantToExclusive) &&
			!f.IncludeInactive &&
			f.Limit == 20 && f.Offset == 0
	})).Return([]domain.IncomeReceiptReport{}, int64(0), nil).Once()

	resp, err := suite.service.QueryIncomeReceipts(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(int64(0), resp.Total)
	suite.Equal(0, resp.TotalPages)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestQueryIncomeReceipts_RejectsInvertedRange() {
	ctx := context.Background()

	params := dto.IncomeReceiptReportParams{
		DateFrom: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	resp, err := suite.service.QueryIncomeReceipts(ctx, params)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "ListIncomeReceiptReports")
}

func (suite *ReportingServiceTestSuite) TestQueryIncomeReceipts_PaginationMath() {
	ctx := context.Background()

	params := dto.IncomeReceiptReportParams{
		DateFrom: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Page:     3,
		PageSize: 10,
	}

	rows := []domain.IncomeReceiptReport{
		{IncomeReceipt: domain.IncomeReceipt{ReceiptID: 21}},
	}
	suite.mockReportingRepo.On("ListIncomeReceiptReports", ctx, mock.MatchedBy(func(f portsrepo.IncomeReceiptReportFilter) bool {
		return f.Limit == 10 && f.Offset == 20
	})).Return(rows, int64(25), nil).Once()

	resp, err := suite.service.QueryIncomeReceipts(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(int64(25), resp.Total)
	suite.Equal(3, resp.Page)
	suite.Equal(10, resp.PageSize)
	suite.Equal(3, resp.TotalPages)
	suite.Len(resp.Data, 1)
}

func (suite *ReportingServiceTestSuite) TestQueryIncomeReceipts_PassesFilters() {
	ctx := context.Background()
	conceptID := int64(3)
	methodID := int64(2)

	params := dto.IncomeReceiptReportParams{
		DateFrom:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DateTo:          time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		ConceptID:       &conceptID,
		PaymentMethodID: &methodID,
		IncludeInactive: true,
	}

	suite.mockReportingRepo.On("ListIncomeReceiptReports", ctx, mock.MatchedBy(func(f portsrepo.IncomeReceiptReportFilter) bool {
		return f.ConceptID != nil && *f.ConceptID == conceptID &&
			f.PaymentMethodID != nil && *f.PaymentMethodID == methodID &&
			f.IncludeInactive
	})).Return([]domain.IncomeReceiptReport{}, int64(0), nil).Once()

	_, err := suite.service.QueryIncomeReceipts(ctx, params)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestQueryExpenseReceipts_SingleDayRange() {
	ctx := context.Background()
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	params := dto.ExpenseReceiptReportParams{DateFrom: day, DateTo: day}

	wantFrom := time.Date(2026, 8, 10, 0, 0, 0, 0, suite.location)
	wantToExclusive := time.Date(2026, 8, 11, 0, 0, 0, 0, suite.location)

	suite.mockReportingRepo.On("ListExpenseReceiptReports", ctx, mock.MatchedBy(func(f portsrepo.ExpenseReceiptReportFilter) bool {
		return f.DateFrom.Equal(wantFrom) && f.DateToExclusive.Equal(wantToExclusive)
	})).Return([]domain.ExpenseReceiptReport{}, int64(0), nil).Once()

	_, err := suite.service.QueryExpenseReceipts(ctx, params)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestQueryIncomeByConceptSummary_ReturnsRows() {
	ctx := context.Background()

	rows := []domain.ConceptSummaryRow{
		{ReceiptID: 1, ConceptID: 3, ConceptName: "Maintenance", Amount: decimal.RequireFromString("60"), Active: true},
	}
	suite.mockReportingRepo.On("ListConceptSummary", ctx).Return(rows, nil).Once()

	got, err := suite.service.QueryIncomeByConceptSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("Maintenance", got[0].ConceptName)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
