package services

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// DebtSvcFacade defines debt ledger operations.
type DebtSvcFacade interface {
	// CreateDebt assesses a charge: a header with one or more line items.
	// Fails with apperrors.ErrValidation when any line amount is not
	// positive, and apperrors.ErrNotFound when the stand or a concept does
	// not exist.
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest, creatorUserID string) (*domain.DebtHeader, error)

	// GetDebtByID returns a debt header with its line items.
	GetDebtByID(ctx context.Context, debtID int64) (*domain.DebtHeader, error)

	// GetOutstanding returns the stand's line items with a positive derived
	// remaining balance, oldest period first, lowest id as tie-break.
	GetOutstanding(ctx context.Context, standID int64) ([]domain.OutstandingLineItem, error)

	// ListDebtsByStand returns the stand's debt headers with line items.
	ListDebtsByStand(ctx context.Context, standID int64) ([]domain.DebtHeader, error)
}
