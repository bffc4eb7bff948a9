package repositories

import (
	"context"
	"time"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

// IncomeReceiptReader defines read operations for income receipt data
type IncomeReceiptReader interface {
	// FindIncomeReceiptByID retrieves an income receipt with its details.
	FindIncomeReceiptByID(ctx context.Context, receiptID int64) (*domain.IncomeReceipt, error)
}

// IncomeReceiptWriter defines write operations for income receipt data
type IncomeReceiptWriter interface {
	// SaveIncomeReceipt persists the receipt and all its details as one
	// atomic unit. Targeted debt line items are locked, their remaining
	// balances recomputed under the lock, and the whole receipt is rejected
	// with apperrors.ErrInsufficientDebtBalance if any detail exceeds its
	// target's balance. Returns the created receipt with its sequential id
	// and timestamps. Serialization failures surface as
	// apperrors.ErrConcurrencyConflict.
	SaveIncomeReceipt(ctx context.Context, receipt domain.IncomeReceipt, details []domain.ReceiptDetail) (*domain.IncomeReceipt, error)

	// VoidIncomeReceipt flips the receipt inactive, recording who voided it
	// and when. Detail rows are retained unchanged. Returns
	// apperrors.ErrNotFound if the receipt does not exist and
	// apperrors.ErrAlreadyVoid if it is already inactive. Because balances
	// are derived from active receipts only, the flip reverses every
	// allocation at once and a repeated void cannot double-credit.
	VoidIncomeReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error
}

// IncomeReceiptRepositoryFacade combines income receipt repository interfaces
type IncomeReceiptRepositoryFacade interface {
	IncomeReceiptReader
	IncomeReceiptWriter
}

// ExpenseReceiptReader defines read operations for expense receipt data
type ExpenseReceiptReader interface {
	// FindExpenseReceiptByID retrieves an expense receipt with its details.
	FindExpenseReceiptByID(ctx context.Context, receiptID int64) (*domain.ExpenseReceipt, error)
}

// ExpenseReceiptWriter defines write operations for expense receipt data
type ExpenseReceiptWriter interface {
	// SaveExpenseReceipt persists the receipt and its details atomically and
	// returns the created receipt with its sequential id.
	SaveExpenseReceipt(ctx context.Context, receipt domain.ExpenseReceipt, details []domain.ExpenseDetail) (*domain.ExpenseReceipt, error)

	// VoidExpenseReceipt flips the receipt inactive. Same not-found and
	// already-void semantics as VoidIncomeReceipt.
	VoidExpenseReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error
}

// ExpenseReceiptRepositoryFacade combines expense receipt repository interfaces
type ExpenseReceiptRepositoryFacade interface {
	ExpenseReceiptReader
	ExpenseReceiptWriter
}
