package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// clientService provides client catalog operations.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: client name must not be blank", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	client := domain.Client{
		Name: strings.TrimSpace(req.Name),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.clientRepo.SaveClient(ctx, client)
	if err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	logger.Info("Client created", slog.Int64("client_id", created.ClientID))
	return created, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}

// standService provides stand catalog operations.
type standService struct {
	standRepo  portsrepo.StandRepositoryFacade
	clientRepo portsrepo.ClientReader
}

// NewStandService creates a new StandService.
func NewStandService(standRepo portsrepo.StandRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.StandSvcFacade {
	return &standService{standRepo: standRepo, clientRepo: clientRepo}
}

var _ portssvc.StandSvcFacade = (*standService)(nil)

func (s *standService) CreateStand(ctx context.Context, req dto.CreateStandRequest, creatorUserID string) (*domain.Stand, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Code) == "" {
		return nil, fmt.Errorf("%w: stand code must not be blank", apperrors.ErrValidation)
	}

	// The owning client must exist before a stand can reference it.
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}

	now := time.Now().UTC()
	stand := domain.Stand{
		ClientID:    req.ClientID,
		Code:        strings.TrimSpace(req.Code),
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.standRepo.SaveStand(ctx, stand)
	if err != nil {
		logger.Error("Failed to save stand", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save stand: %w", err)
	}

	logger.Info("Stand created", slog.Int64("stand_id", created.StandID), slog.Int64("client_id", created.ClientID))
	return created, nil
}

func (s *standService) GetStandByID(ctx context.Context, standID int64) (*domain.Stand, error) {
	return s.standRepo.FindStandByID(ctx, standID)
}

func (s *standService) ListStands(ctx context.Context) ([]domain.Stand, error) {
	return s.standRepo.ListStands(ctx)
}

// conceptService provides concept catalog operations.
type conceptService struct {
	conceptRepo portsrepo.ConceptRepositoryFacade
}

// NewConceptService creates a new ConceptService.
func NewConceptService(conceptRepo portsrepo.ConceptRepositoryFacade) portssvc.ConceptSvcFacade {
	return &conceptService{conceptRepo: conceptRepo}
}

var _ portssvc.ConceptSvcFacade = (*conceptService)(nil)

func (s *conceptService) CreateConcept(ctx context.Context, req dto.CreateConceptRequest, creatorUserID string) (*domain.Concept, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: concept name must not be blank", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	concept := domain.Concept{
		Name: strings.TrimSpace(req.Name),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.conceptRepo.SaveConcept(ctx, concept)
	if err != nil {
		logger.Error("Failed to save concept", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save concept: %w", err)
	}

	logger.Info("Concept created", slog.Int64("concept_id", created.ConceptID))
	return created, nil
}

func (s *conceptService) RenameConcept(ctx context.Context, conceptID int64, req dto.RenameConceptRequest, updaterUserID string) (*domain.Concept, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: concept name must not be blank", apperrors.ErrValidation)
	}

	updated, err := s.conceptRepo.UpdateConceptName(ctx, conceptID, strings.TrimSpace(req.Name), updaterUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to rename concept %d: %w", conceptID, err)
	}

	logger.Info("Concept renamed", slog.Int64("concept_id", conceptID))
	return updated, nil
}

func (s *conceptService) GetConceptByID(ctx context.Context, conceptID int64) (*domain.Concept, error) {
	return s.conceptRepo.FindConceptByID(ctx, conceptID)
}

func (s *conceptService) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	return s.conceptRepo.ListConcepts(ctx)
}

// paymentMethodService provides payment method catalog operations.
type paymentMethodService struct {
	methodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates a new PaymentMethodService.
func NewPaymentMethodService(methodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{methodRepo: methodRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: payment method name must not be blank", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	method := domain.PaymentMethod{
		Name: strings.TrimSpace(req.Name),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.methodRepo.SavePaymentMethod(ctx, method)
	if err != nil {
		logger.Error("Failed to save payment method", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}

	logger.Info("Payment method created", slog.Int64("payment_method_id", created.PaymentMethodID))
	return created, nil
}

func (s *paymentMethodService) GetPaymentMethodByID(ctx context.Context, paymentMethodID int64) (*domain.PaymentMethod, error) {
	return s.methodRepo.FindPaymentMethodByID(ctx, paymentMethodID)
}

func (s *paymentMethodService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.methodRepo.ListPaymentMethods(ctx)
}
