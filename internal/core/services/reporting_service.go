package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/pagination"
)

// reportingService answers the read-only report queries. Calendar dates are
// widened to whole days in the configured report time zone, so a receipt at
// 23:59:59.999 on the last day is included and the next midnight is not.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	location      *time.Location
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, location *time.Location) portssvc.ReportingSvcFacade {
	if location == nil {
		location = time.UTC
	}
	return &reportingService{
		reportingRepo: reportingRepo,
		location:      location,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// dayRange converts inclusive calendar dates into a half-open instant range
// in the report zone: [from 00:00:00.000, day after to 00:00:00.000).
func (s *reportingService) dayRange(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, s.location)
	endExclusive := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, s.location).AddDate(0, 0, 1)
	return start, endExclusive
}

func (s *reportingService) QueryIncomeReceipts(ctx context.Context, params dto.IncomeReceiptReportParams) (*dto.PagedResponse[domain.IncomeReceiptReport], error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.DateTo.Before(params.DateFrom) {
		return nil, fmt.Errorf("%w: dateTo must not precede dateFrom", apperrors.ErrValidation)
	}

	page := pagination.Params{Page: params.Page, PageSize: params.PageSize}
	page.Normalize()

	from, toExclusive := s.dayRange(params.DateFrom, params.DateTo)
	filter := portsrepo.IncomeReceiptReportFilter{
		DateFrom:        from,
		DateToExclusive: toExclusive,
		ConceptID:       params.ConceptID,
		PaymentMethodID: params.PaymentMethodID,
		IncludeInactive: params.IncludeInactive,
		Limit:           page.PageSize,
		Offset:          page.Offset(),
	}

	rows, total, err := s.reportingRepo.ListIncomeReceiptReports(ctx, filter)
	if err != nil {
		logger.Error("Failed to query income receipts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query income receipts: %w", err)
	}

	logger.Debug("Income receipt report generated", slog.Int("rows", len(rows)), slog.Int64("total", total))
	return &dto.PagedResponse[domain.IncomeReceiptReport]{
		Data:       rows,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (s *reportingService) QueryExpenseReceipts(ctx context.Context, params dto.ExpenseReceiptReportParams) (*dto.PagedResponse[domain.ExpenseReceiptReport], error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if params.DateTo.Before(params.DateFrom) {
		return nil, fmt.Errorf("%w: dateTo must not precede dateFrom", apperrors.ErrValidation)
	}

	page := pagination.Params{Page: params.Page, PageSize: params.PageSize}
	page.Normalize()

	from, toExclusive := s.dayRange(params.DateFrom, params.DateTo)
	filter := portsrepo.ExpenseReceiptReportFilter{
		DateFrom:        from,
		DateToExclusive: toExclusive,
		IncludeInactive: params.IncludeInactive,
		Limit:           page.PageSize,
		Offset:          page.Offset(),
	}

	rows, total, err := s.reportingRepo.ListExpenseReceiptReports(ctx, filter)
	if err != nil {
		logger.Error("Failed to query expense receipts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query expense receipts: %w", err)
	}

	logger.Debug("Expense receipt report generated", slog.Int("rows", len(rows)), slog.Int64("total", total))
	return &dto.PagedResponse[domain.ExpenseReceiptReport]{
		Data:       rows,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (s *reportingService) QueryIncomeByConceptSummary(ctx context.Context) ([]domain.ConceptSummaryRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.ListConceptSummary(ctx)
	if err != nil {
		logger.Error("Failed to query income by concept summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query income by concept summary: %w", err)
	}

	logger.Debug("Concept summary generated", slog.Int("rows", len(rows)))
	return rows, nil
}
