package repositories

import (
	"context"
	"time"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

// IncomeReceiptReportFilter bounds and filters the income receipt report.
// DateFrom is inclusive, DateToExclusive is the first instant after the
// range; the service derives both from calendar dates in the report zone.
type IncomeReceiptReportFilter struct {
	DateFrom        time.Time
	DateToExclusive time.Time
	ConceptID       *int64
	PaymentMethodID *int64
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ExpenseReceiptReportFilter bounds the expense receipt report.
type ExpenseReceiptReportFilter struct {
	DateFrom        time.Time
	DateToExclusive time.Time
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ReportingRepository defines the read-only aggregation queries backing the
// report layer. Every method reflects a single consistent snapshot and never
// mutates ledger state.
type ReportingRepository interface {
	// ListIncomeReceiptReports returns one page of income receipts with
	// stand, client, payment method, creator username and details resolved,
	// ordered by receipt date descending then id descending, plus the total
	// row count for the filter.
	ListIncomeReceiptReports(ctx context.Context, filter IncomeReceiptReportFilter) ([]domain.IncomeReceiptReport, int64, error)

	// ListExpenseReceiptReports returns one page of expense receipts with
	// creator username and details resolved, same ordering and total
	// semantics as the income report.
	ListExpenseReceiptReports(ctx context.Context, filter ExpenseReceiptReportFilter) ([]domain.ExpenseReceiptReport, int64, error)

	// ListConceptSummary returns every income receipt detail over the full
	// history, flattened and joined to concept, and (via the paid line item)
	// stand and client, ordered by receipt date descending then id descending.
	ListConceptSummary(ctx context.Context) ([]domain.ConceptSummaryRow, error)
}
