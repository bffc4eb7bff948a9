package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/mapping"
)

// PgxReportingRepository serves the read-only report queries. Every method
// runs against live tables; voided receipts stay visible when the filter
// asks for them, flagged by the active column.
type PgxReportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new repository for report queries.
func NewReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// ListIncomeReceiptReports returns one page of income receipts matching the
// filter plus the total row count, newest receipt first.
func (r *PgxReportingRepository) ListIncomeReceiptReports(ctx context.Context, filter portsrepo.IncomeReceiptReportFilter) ([]domain.IncomeReceiptReport, int64, error) {
	where := ` WHERE ir.receipt_date >= $1 AND ir.receipt_date < $2`
	args := []any{filter.DateFrom, filter.DateToExclusive}
	if !filter.IncludeInactive {
		where += ` AND ir.active`
	}
	if filter.PaymentMethodID != nil {
		args = append(args, *filter.PaymentMethodID)
		where += ` AND ir.payment_method_id = $` + strconv.Itoa(len(args))
	}
	if filter.ConceptID != nil {
		args = append(args, *filter.ConceptID)
		where += ` AND EXISTS (
			SELECT 1 FROM income_receipt_details fd
			WHERE fd.receipt_id = ir.receipt_id AND fd.concept_id = $` + strconv.Itoa(len(args)) + `)`
	}

	countQuery := `SELECT COUNT(*) FROM income_receipts ir` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count income receipts", err)
	}

	args = append(args, filter.Limit)
	limitArg := strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetArg := strconv.Itoa(len(args))

	pageQuery := `
		SELECT ir.receipt_id, ir.receipt_date, ir.stand_id, ir.payment_method_id, ir.active, ir.voided_at, ir.voided_by,
		       ir.created_at, ir.created_by, ir.last_updated_at, ir.last_updated_by,
		       s.code, c.name, pm.name, COALESCE(u.username, ir.created_by)
		FROM income_receipts ir
		JOIN stands s ON ir.stand_id = s.stand_id
		JOIN clients c ON s.client_id = c.client_id
		JOIN payment_methods pm ON ir.payment_method_id = pm.payment_method_id
		LEFT JOIN users u ON ir.created_by = u.user_id::text` +
		where + `
		ORDER BY ir.receipt_date DESC, ir.receipt_id DESC
		LIMIT $` + limitArg + ` OFFSET $` + offsetArg + `;`

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query income receipt report", err)
	}
	defer rows.Close()

	reports := []domain.IncomeReceiptReport{}
	receiptIDs := []int64{}
	for rows.Next() {
		var m models.IncomeReceipt
		var report domain.IncomeReceiptReport
		if err := rows.Scan(
			&m.ReceiptID, &m.ReceiptDate, &m.StandID, &m.PaymentMethodID, &m.Active, &m.VoidedAt, &m.VoidedBy,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
			&report.StandCode, &report.ClientName, &report.PaymentMethodName, &report.CreatedByUsername,
		); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan income report row", err)
		}
		report.IncomeReceipt = mapping.ToDomainIncomeReceipt(m)
		reports = append(reports, report)
		receiptIDs = append(receiptIDs, m.ReceiptID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating income report rows", err)
	}

	if len(receiptIDs) > 0 {
		detailsByReceipt, err := r.findIncomeReportDetails(ctx, receiptIDs)
		if err != nil {
			return nil, 0, err
		}
		for i := range reports {
			reports[i].DetailRows = detailsByReceipt[reports[i].ReceiptID]
		}
	}

	return reports, total, nil
}

func (r *PgxReportingRepository) findIncomeReportDetails(ctx context.Context, receiptIDs []int64) (map[int64][]domain.IncomeReceiptReportDetail, error) {
	query := `
		SELECT d.detail_id, d.receipt_id, d.line_no, d.concept_id, d.kind, d.line_item_id, d.amount,
		       co.name, li.period
		FROM income_receipt_details d
		JOIN concepts co ON d.concept_id = co.concept_id
		LEFT JOIN debt_line_items li ON d.line_item_id = li.line_item_id
		WHERE d.receipt_id = ANY($1)
		ORDER BY d.receipt_id, d.line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query, receiptIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query income report details", err)
	}
	defer rows.Close()

	byReceipt := map[int64][]domain.IncomeReceiptReportDetail{}
	for rows.Next() {
		var m models.IncomeReceiptDetail
		var detail domain.IncomeReceiptReportDetail
		if err := rows.Scan(
			&m.DetailID, &m.ReceiptID, &m.LineNo, &m.ConceptID, &m.Kind, &m.LineItemID, &m.Amount,
			&detail.ConceptName, &detail.Period,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan income report detail row", err)
		}
		detail.ReceiptDetail = mapping.ToDomainIncomeReceiptDetail(m)
		byReceipt[m.ReceiptID] = append(byReceipt[m.ReceiptID], detail)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating income report detail rows", err)
	}

	return byReceipt, nil
}

// ListExpenseReceiptReports returns one page of expense receipts matching
// the filter plus the total row count, newest receipt first.
func (r *PgxReportingRepository) ListExpenseReceiptReports(ctx context.Context, filter portsrepo.ExpenseReceiptReportFilter) ([]domain.ExpenseReceiptReport, int64, error) {
	where := ` WHERE er.receipt_date >= $1 AND er.receipt_date < $2`
	args := []any{filter.DateFrom, filter.DateToExclusive}
	if !filter.IncludeInactive {
		where += ` AND er.active`
	}

	countQuery := `SELECT COUNT(*) FROM expense_receipts er` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count expense receipts", err)
	}

	args = append(args, filter.Limit)
	limitArg := strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	offsetArg := strconv.Itoa(len(args))

	pageQuery := `
		SELECT er.receipt_id, er.receipt_date, er.active, er.voided_at, er.voided_by,
		       er.created_at, er.created_by, er.last_updated_at, er.last_updated_by,
		       COALESCE(u.username, er.created_by)
		FROM expense_receipts er
		LEFT JOIN users u ON er.created_by = u.user_id::text` +
		where + `
		ORDER BY er.receipt_date DESC, er.receipt_id DESC
		LIMIT $` + limitArg + ` OFFSET $` + offsetArg + `;`

	rows, err := r.Pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query expense receipt report", err)
	}
	defer rows.Close()

	reports := []domain.ExpenseReceiptReport{}
	receiptIDs := []int64{}
	for rows.Next() {
		var m models.ExpenseReceipt
		var report domain.ExpenseReceiptReport
		if err := rows.Scan(
			&m.ReceiptID, &m.ReceiptDate, &m.Active, &m.VoidedAt, &m.VoidedBy,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
			&report.CreatedByUsername,
		); err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan expense report row", err)
		}
		report.ExpenseReceipt = mapping.ToDomainExpenseReceipt(m)
		reports = append(reports, report)
		receiptIDs = append(receiptIDs, m.ReceiptID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating expense report rows", err)
	}

	if len(receiptIDs) > 0 {
		detailsByReceipt, err := r.findExpenseReportDetails(ctx, receiptIDs)
		if err != nil {
			return nil, 0, err
		}
		for i := range reports {
			reports[i].DetailRows = detailsByReceipt[reports[i].ReceiptID]
		}
	}

	return reports, total, nil
}

func (r *PgxReportingRepository) findExpenseReportDetails(ctx context.Context, receiptIDs []int64) (map[int64][]domain.ExpenseReceiptReportDetail, error) {
	query := `
		SELECT d.detail_id, d.receipt_id, d.line_no, d.concept_id, d.amount, co.name
		FROM expense_receipt_details d
		JOIN concepts co ON d.concept_id = co.concept_id
		WHERE d.receipt_id = ANY($1)
		ORDER BY d.receipt_id, d.line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query, receiptIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense report details", err)
	}
	defer rows.Close()

	byReceipt := map[int64][]domain.ExpenseReceiptReportDetail{}
	for rows.Next() {
		var m models.ExpenseReceiptDetail
		var detail domain.ExpenseReceiptReportDetail
		if err := rows.Scan(&m.DetailID, &m.ReceiptID, &m.LineNo, &m.ConceptID, &m.Amount, &detail.ConceptName); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense report detail row", err)
		}
		detail.ExpenseDetail = mapping.ToDomainExpenseDetail(m)
		byReceipt[m.ReceiptID] = append(byReceipt[m.ReceiptID], detail)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense report detail rows", err)
	}

	return byReceipt, nil
}

// ListConceptSummary flattens every income receipt detail over the full
// history, joined to its concept and, for debt payments, through the line
// item to the stand and client.
func (r *PgxReportingRepository) ListConceptSummary(ctx context.Context) ([]domain.ConceptSummaryRow, error) {
	query := `
		SELECT ir.receipt_id, ir.receipt_date, ir.active,
		       d.concept_id, co.name, d.amount, d.line_item_id, s.code, cl.name
		FROM income_receipt_details d
		JOIN income_receipts ir ON d.receipt_id = ir.receipt_id
		JOIN concepts co ON d.concept_id = co.concept_id
		LEFT JOIN debt_line_items li ON d.line_item_id = li.line_item_id
		LEFT JOIN debt_headers dh ON li.debt_id = dh.debt_id
		LEFT JOIN stands s ON dh.stand_id = s.stand_id
		LEFT JOIN clients cl ON s.client_id = cl.client_id
		ORDER BY ir.receipt_date DESC, ir.receipt_id DESC, d.line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query concept summary", err)
	}
	defer rows.Close()

	summary := []domain.ConceptSummaryRow{}
	for rows.Next() {
		var row domain.ConceptSummaryRow
		if err := rows.Scan(
			&row.ReceiptID, &row.ReceiptDate, &row.Active,
			&row.ConceptID, &row.ConceptName, &row.Amount, &row.LineItemID, &row.StandCode, &row.ClientName,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan concept summary row", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating concept summary rows", err)
	}

	return summary, nil
}
