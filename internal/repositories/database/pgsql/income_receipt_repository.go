package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/mapping"
)

// PgxIncomeReceiptRepository persists income receipts in PostgreSQL. The
// save path is where atomicity for debt allocation is enforced: targeted
// line items are row-locked, balances recomputed under the lock, and the
// whole receipt is rejected if any allocation would overdraw its target.
type PgxIncomeReceiptRepository struct {
	BaseRepository
}

// NewIncomeReceiptRepository creates a new repository for income receipt data.
func NewIncomeReceiptRepository(pool *pgxpool.Pool) portsrepo.IncomeReceiptRepositoryFacade {
	return &PgxIncomeReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeReceiptRepositoryFacade = (*PgxIncomeReceiptRepository)(nil)

// SaveIncomeReceipt persists the receipt and its details as one transaction.
// All-or-nothing: a single overdrawn allocation rolls the entire receipt
// back with ErrInsufficientDebtBalance and no balance is touched.
func (r *PgxIncomeReceiptRepository) SaveIncomeReceipt(ctx context.Context, receipt domain.IncomeReceipt, details []domain.ReceiptDetail) (*domain.IncomeReceipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := r.checkAllocations(ctx, tx, receipt.StandID, details); err != nil {
		return nil, err
	}

	m := mapping.ToModelIncomeReceipt(receipt)
	receiptQuery := `
		INSERT INTO income_receipts (receipt_date, stand_id, payment_method_id, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6, $7)
		RETURNING receipt_id;
	`
	err = tx.QueryRow(ctx, receiptQuery,
		m.ReceiptDate, m.StandID, m.PaymentMethodID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ReceiptID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert income receipt", err)
	}
	m.Active = true

	detailQuery := `
		INSERT INTO income_receipt_details (receipt_id, line_no, concept_id, kind, line_item_id, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	saved := make([]models.IncomeReceiptDetail, 0, len(details))
	for _, d := range details {
		dm := mapping.ToModelIncomeReceiptDetail(d)
		dm.ReceiptID = m.ReceiptID
		batch.Queue(detailQuery, dm.ReceiptID, dm.LineNo, dm.ConceptID, dm.Kind, dm.LineItemID, dm.Amount)
		saved = append(saved, dm)
	}
	br := tx.SendBatch(ctx, batch)
	for range details {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			err = translateError(err)
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			return nil, apperrors.NewAppError(500, "failed to insert income receipt detail", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close detail batch", translateError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created := mapping.ToDomainIncomeReceipt(m)
	created.Details = mapping.ToDomainIncomeReceiptDetailSlice(saved)
	return &created, nil
}

// checkAllocations locks every targeted line item and verifies, under the
// lock, that each requested allocation fits within the item's remaining
// balance. The row locks hold until commit, so two concurrent receipts
// against the same item serialize here and the loser sees the winner's
// allocation when its turn comes.
func (r *PgxIncomeReceiptRepository) checkAllocations(ctx context.Context, tx pgx.Tx, standID int64, details []domain.ReceiptDetail) error {
	requested := map[int64]decimal.Decimal{}
	for _, d := range details {
		if d.Kind != domain.DetailDebtPayment || d.LineItemID == nil {
			continue
		}
		id := *d.LineItemID
		requested[id] = requested[id].Add(d.Amount)
	}
	if len(requested) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}

	lockQuery := `
		SELECT li.line_item_id, dh.stand_id, li.amount_due
		FROM debt_line_items li
		JOIN debt_headers dh ON li.debt_id = dh.debt_id
		WHERE li.line_item_id = ANY($1)
		FOR UPDATE OF li;
	`
	rows, err := tx.Query(ctx, lockQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock debt line items", translateError(err))
	}
	amountDue := map[int64]decimal.Decimal{}
	for rows.Next() {
		var id, itemStandID int64
		var due decimal.Decimal
		if err := rows.Scan(&id, &itemStandID, &due); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan locked line item", err)
		}
		if itemStandID != standID {
			rows.Close()
			return fmt.Errorf("%w: line item %d does not belong to stand %d", apperrors.ErrValidation, id, standID)
		}
		amountDue[id] = due
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating locked line items", err)
	}
	for _, id := range ids {
		if _, ok := amountDue[id]; !ok {
			return fmt.Errorf("%w: debt line item %d", apperrors.ErrNotFound, id)
		}
	}

	allocQuery := `
		SELECT d.line_item_id, COALESCE(SUM(d.amount), 0)
		FROM income_receipt_details d
		JOIN income_receipts r ON d.receipt_id = r.receipt_id
		WHERE r.active AND d.line_item_id = ANY($1)
		GROUP BY d.line_item_id;
	`
	allocRows, err := tx.Query(ctx, allocQuery, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query existing allocations", err)
	}
	allocated := map[int64]decimal.Decimal{}
	for allocRows.Next() {
		var id int64
		var total decimal.Decimal
		if err := allocRows.Scan(&id, &total); err != nil {
			allocRows.Close()
			return apperrors.NewAppError(500, "failed to scan allocation sum", err)
		}
		allocated[id] = total
	}
	allocRows.Close()
	if err := allocRows.Err(); err != nil {
		return apperrors.NewAppError(500, "error iterating allocation sums", err)
	}

	for _, id := range ids {
		remaining := domain.RemainingBalance(amountDue[id], allocated[id])
		if requested[id].GreaterThan(remaining) {
			return fmt.Errorf("%w: line item %d has %s remaining, %s requested",
				apperrors.ErrInsufficientDebtBalance, id, remaining.String(), requested[id].String())
		}
	}
	return nil
}

// VoidIncomeReceipt flips the receipt inactive. Because every balance read
// counts active receipts only, this single update reverses all of the
// receipt's allocations at once.
func (r *PgxIncomeReceiptRepository) VoidIncomeReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error {
	query := `
		UPDATE income_receipts
		SET active = FALSE, voided_at = $2, voided_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE receipt_id = $1 AND active;
	`
	tag, err := r.Pool.Exec(ctx, query, receiptID, voidedAt, voidedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void income receipt", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM income_receipts WHERE receipt_id = $1);`, receiptID).Scan(&exists)
		if err != nil {
			return apperrors.NewAppError(500, "failed to check income receipt existence", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrAlreadyVoid
	}
	return nil
}

// FindIncomeReceiptByID retrieves an income receipt with its details.
func (r *PgxIncomeReceiptRepository) FindIncomeReceiptByID(ctx context.Context, receiptID int64) (*domain.IncomeReceipt, error) {
	query := `
		SELECT receipt_id, receipt_date, stand_id, payment_method_id, active, voided_at, voided_by,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM income_receipts
		WHERE receipt_id = $1;
	`
	var m models.IncomeReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID, &m.ReceiptDate, &m.StandID, &m.PaymentMethodID, &m.Active, &m.VoidedAt, &m.VoidedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find income receipt", err)
	}

	detailQuery := `
		SELECT detail_id, receipt_id, line_no, concept_id, kind, line_item_id, amount
		FROM income_receipt_details
		WHERE receipt_id = $1
		ORDER BY line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, detailQuery, receiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receipt details", err)
	}
	defer rows.Close()

	details := []models.IncomeReceiptDetail{}
	for rows.Next() {
		var d models.IncomeReceiptDetail
		if err := rows.Scan(&d.DetailID, &d.ReceiptID, &d.LineNo, &d.ConceptID, &d.Kind, &d.LineItemID, &d.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt detail row", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating receipt detail rows", err)
	}

	receipt := mapping.ToDomainIncomeReceipt(m)
	receipt.Details = mapping.ToDomainIncomeReceiptDetailSlice(details)
	return &receipt, nil
}
