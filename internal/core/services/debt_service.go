package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// debtService provides debt ledger operations.
type debtService struct {
	debtRepo    portsrepo.DebtRepositoryFacade
	standRepo   portsrepo.StandReader
	conceptRepo portsrepo.ConceptReader
}

// NewDebtService creates a new DebtService.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, standRepo portsrepo.StandReader, conceptRepo portsrepo.ConceptReader) portssvc.DebtSvcFacade {
	return &debtService{
		debtRepo:    debtRepo,
		standRepo:   standRepo,
		conceptRepo: conceptRepo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// CreateDebt assesses a new charge against a stand: one header with its line
// items, persisted atomically.
func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest, creatorUserID string) (*domain.DebtHeader, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("%w: debt must have at least one line item", apperrors.ErrValidation)
	}

	if _, err := s.standRepo.FindStandByID(ctx, req.StandID); err != nil {
		return nil, fmt.Errorf("stand %d: %w", req.StandID, err)
	}

	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	lineItems := make([]domain.DebtLineItem, len(req.LineItems))
	for i, line := range req.LineItems {
		if line.AmountDue.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount due must be positive for concept %d", apperrors.ErrValidation, line.ConceptID)
		}
		if _, err := s.conceptRepo.FindConceptByID(ctx, line.ConceptID); err != nil {
			return nil, fmt.Errorf("concept %d: %w", line.ConceptID, err)
		}
		lineItems[i] = domain.DebtLineItem{
			ConceptID:   line.ConceptID,
			StandID:     req.StandID,
			AmountDue:   line.AmountDue,
			Period:      line.Period,
			AuditFields: audit,
		}
	}

	header := domain.DebtHeader{
		StandID:     req.StandID,
		Description: req.Description,
		AuditFields: audit,
	}

	created, err := s.debtRepo.SaveDebt(ctx, header, lineItems)
	if err != nil {
		logger.Error("Failed to save debt", slog.String("error", err.Error()), slog.Int64("stand_id", req.StandID))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	logger.Info("Debt created", slog.Int64("debt_id", created.DebtID), slog.Int64("stand_id", req.StandID), slog.Int("line_items", len(created.LineItems)))
	return created, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, debtID int64) (*domain.DebtHeader, error) {
	return s.debtRepo.FindDebtHeaderByID(ctx, debtID)
}

// GetOutstanding returns the stand's payable line items oldest first. The
// remaining balance is derived at read time from active receipt allocations.
func (s *debtService) GetOutstanding(ctx context.Context, standID int64) ([]domain.OutstandingLineItem, error) {
	if _, err := s.standRepo.FindStandByID(ctx, standID); err != nil {
		return nil, fmt.Errorf("stand %d: %w", standID, err)
	}
	return s.debtRepo.FindOutstandingByStand(ctx, standID)
}

func (s *debtService) ListDebtsByStand(ctx context.Context, standID int64) ([]domain.DebtHeader, error) {
	if _, err := s.standRepo.FindStandByID(ctx, standID); err != nil {
		return nil, fmt.Errorf("stand %d: %w", standID, err)
	}
	return s.debtRepo.ListDebtHeadersByStand(ctx, standID)
}
