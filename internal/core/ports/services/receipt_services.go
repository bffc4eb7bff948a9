package services

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// IncomeReceiptSvcFacade defines income receipt engine operations.
type IncomeReceiptSvcFacade interface {
	// CreateIncomeReceipt records money received, allocating payment across
	// debt line items per the request's details. The balance check and the
	// allocation write are one atomic unit; a detail that exceeds its
	// target's remaining balance fails the whole receipt with
	// apperrors.ErrInsufficientDebtBalance. Lost races against concurrent
	// allocators are retried a bounded number of times before surfacing
	// apperrors.ErrConcurrencyConflict.
	CreateIncomeReceipt(ctx context.Context, req dto.CreateIncomeReceiptRequest, creatorUserID string) (*domain.IncomeReceipt, error)

	// VoidIncomeReceipt marks the receipt inactive, reversing its
	// contribution to every allocated line item's balance. Fails with
	// apperrors.ErrNotFound or apperrors.ErrAlreadyVoid.
	VoidIncomeReceipt(ctx context.Context, receiptID int64, voiderUserID string) error

	// GetIncomeReceiptByID retrieves a receipt with its details.
	GetIncomeReceiptByID(ctx context.Context, receiptID int64) (*domain.IncomeReceipt, error)
}

// ExpenseReceiptSvcFacade defines expense receipt engine operations.
type ExpenseReceiptSvcFacade interface {
	// CreateExpenseReceipt records money paid out against concepts. Fails
	// with apperrors.ErrValidation when the detail list is empty or any
	// amount is not positive.
	CreateExpenseReceipt(ctx context.Context, req dto.CreateExpenseReceiptRequest, creatorUserID string) (*domain.ExpenseReceipt, error)

	// VoidExpenseReceipt marks the receipt inactive.
	VoidExpenseReceipt(ctx context.Context, receiptID int64, voiderUserID string) error

	// GetExpenseReceiptByID retrieves a receipt with its details.
	GetExpenseReceiptByID(ctx context.Context, receiptID int64) (*domain.ExpenseReceipt, error)
}
