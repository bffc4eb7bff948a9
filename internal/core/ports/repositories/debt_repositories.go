package repositories

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

// DebtReader defines read operations for debt data
type DebtReader interface {
	// FindDebtHeaderByID retrieves a debt header with its line items.
	FindDebtHeaderByID(ctx context.Context, debtID int64) (*domain.DebtHeader, error)

	// ListDebtHeadersByStand retrieves a stand's debt headers with their line
	// items, newest header first.
	ListDebtHeadersByStand(ctx context.Context, standID int64) ([]domain.DebtHeader, error)

	// FindOutstandingByStand retrieves the stand's line items whose derived
	// remaining balance is positive, ordered oldest period first, lowest id
	// as tie-break. The balance counts allocations from active receipts only.
	FindOutstandingByStand(ctx context.Context, standID int64) ([]domain.OutstandingLineItem, error)

	// FindLineItemByID retrieves a single debt line item.
	FindLineItemByID(ctx context.Context, lineItemID int64) (*domain.DebtLineItem, error)
}

// DebtWriter defines write operations for debt data
type DebtWriter interface {
	// SaveDebt persists a debt header and its line items atomically and
	// returns the created header with generated ids.
	SaveDebt(ctx context.Context, header domain.DebtHeader, lineItems []domain.DebtLineItem) (*domain.DebtHeader, error)
}

// DebtRepositoryFacade combines debt repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
