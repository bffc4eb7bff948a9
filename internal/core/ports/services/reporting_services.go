package services

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// ReportingSvcFacade defines the read-only report queries. All methods are
// pure reads over receipt and debt state.
type ReportingSvcFacade interface {
	// QueryIncomeReceipts returns a page of income receipts with all foreign
	// relations resolved. Date bounds are inclusive of the full day in the
	// report time zone. Voided receipts are excluded unless requested.
	QueryIncomeReceipts(ctx context.Context, params dto.IncomeReceiptReportParams) (*dto.PagedResponse[domain.IncomeReceiptReport], error)

	// QueryExpenseReceipts returns a page of expense receipts, same date
	// semantics as QueryIncomeReceipts.
	QueryExpenseReceipts(ctx context.Context, params dto.ExpenseReceiptReportParams) (*dto.PagedResponse[domain.ExpenseReceiptReport], error)

	// QueryIncomeByConceptSummary returns the full history of income receipt
	// details flattened for aggregation by concept, newest receipt first.
	QueryIncomeByConceptSummary(ctx context.Context) ([]domain.ConceptSummaryRow, error)
}
