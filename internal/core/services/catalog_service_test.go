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
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockClientRepo  *MockClientRepository
	mockStandRepo   *MockStandRepository
	mockConceptRepo *MockConceptRepository
	mockMethodRepo  *MockPaymentMethodRepository

	clientService  portssvc.ClientSvcFacade
	standService   portssvc.StandSvcFacade
	conceptService portssvc.ConceptSvcFacade
	methodService  portssvc.PaymentMethodSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockStandRepo = new(MockStandRepository)
	suite.mockConceptRepo = new(MockConceptRepository)
	suite.mockMethodRepo = new(MockPaymentMethodRepository)

	suite.clientService = services.NewClientService(suite.mockClientRepo)
	suite.standService = services.NewStandService(suite.mockStandRepo, suite.mockClientRepo)
	suite.conceptService = services.NewConceptService(suite.mockConceptRepo)
	suite.methodService = services.NewPaymentMethodService(suite.mockMethodRepo)
}

func (suite *CatalogServiceTestSuite) TestCreateClient_StampsAuditFields() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Maria Lopez" &&
			c.CreatedBy == creatorUserID &&
			c.LastUpdatedBy == creatorUserID &&
			!c.CreatedAt.IsZero()
	})).Return(&domain.Client{ClientID: 1, Name: "Maria Lopez"}, nil).Once()

	created, err := suite.clientService.CreateClient(ctx, dto.CreateClientRequest{Name: "  Maria Lopez  "}, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(1), created.ClientID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateClient_RejectsBlankName() {
	ctx := context.Background()

	_, err := suite.clientService.CreateClient(ctx, dto.CreateClientRequest{Name: "   "}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient")
}

func (suite *CatalogServiceTestSuite) TestCreateStand_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, int64(1)).
		Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.mockStandRepo.On("SaveStand", ctx, mock.MatchedBy(func(s domain.Stand) bool {
		return s.ClientID == 1 && s.Code == "A-101" && s.CreatedBy == creatorUserID
	})).Return(&domain.Stand{StandID: 7, ClientID: 1, Code: "A-101"}, nil).Once()

	created, err := suite.standService.CreateStand(ctx, dto.CreateStandRequest{ClientID: 1, Code: "A-101"}, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(7), created.StandID)
	suite.mockStandRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestCreateStand_UnknownClient() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.standService.CreateStand(ctx, dto.CreateStandRequest{ClientID: 99, Code: "A-101"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStandRepo.AssertNotCalled(suite.T(), "SaveStand")
}

func (suite *CatalogServiceTestSuite) TestCreateStand_DuplicateCode() {
	ctx := context.Background()

	suite.mockClientRepo.On("FindClientByID", ctx, int64(1)).
		Return(&domain.Client{ClientID: 1}, nil).Once()
	suite.mockStandRepo.On("SaveStand", ctx, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.standService.CreateStand(ctx, dto.CreateStandRequest{ClientID: 1, Code: "A-101"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CatalogServiceTestSuite) TestRenameConcept_Success() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()

	suite.mockConceptRepo.On("UpdateConceptName", ctx, int64(3), "Water service", updaterUserID).
		Return(&domain.Concept{ConceptID: 3, Name: "Water service"}, nil).Once()

	updated, err := suite.conceptService.RenameConcept(ctx, 3, dto.RenameConceptRequest{Name: " Water service "}, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal("Water service", updated.Name)
	suite.mockConceptRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestRenameConcept_NotFound() {
	ctx := context.Background()

	suite.mockConceptRepo.On("UpdateConceptName", ctx, int64(99), "Water", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.conceptService.RenameConcept(ctx, 99, dto.RenameConceptRequest{Name: "Water"}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CatalogServiceTestSuite) TestRenameConcept_RejectsBlankName() {
	ctx := context.Background()

	_, err := suite.conceptService.RenameConcept(ctx, 3, dto.RenameConceptRequest{Name: ""}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockConceptRepo.AssertNotCalled(suite.T(), "UpdateConceptName")
}

func (suite *CatalogServiceTestSuite) TestCreatePaymentMethod_Success() {
	ctx := context.Background()

	suite.mockMethodRepo.On("SavePaymentMethod", ctx, mock.MatchedBy(func(m domain.PaymentMethod) bool {
		return m.Name == "Cash"
	})).Return(&domain.PaymentMethod{PaymentMethodID: 2, Name: "Cash"}, nil).Once()

	created, err := suite.methodService.CreatePaymentMethod(ctx, dto.CreatePaymentMethodRequest{Name: "Cash"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(2), created.PaymentMethodID)
}

func (suite *CatalogServiceTestSuite) TestListClients_ReturnsRepoResult() {
	ctx := context.Background()

	suite.mockClientRepo.On("ListClients", ctx).
		Return([]domain.Client{{ClientID: 1}, {ClientID: 2}}, nil).Once()

	got, err := suite.clientService.ListClients(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
