package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/mapping"
)

// PgxExpenseReceiptRepository persists expense receipts in PostgreSQL.
// Expense receipts never touch the debt ledger, so no locking is needed
// beyond the insert transaction itself.
type PgxExpenseReceiptRepository struct {
	BaseRepository
}

// NewExpenseReceiptRepository creates a new repository for expense receipt data.
func NewExpenseReceiptRepository(pool *pgxpool.Pool) portsrepo.ExpenseReceiptRepositoryFacade {
	return &PgxExpenseReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseReceiptRepositoryFacade = (*PgxExpenseReceiptRepository)(nil)

// SaveExpenseReceipt inserts the receipt and its details in one transaction.
func (r *PgxExpenseReceiptRepository) SaveExpenseReceipt(ctx context.Context, receipt domain.ExpenseReceipt, details []domain.ExpenseDetail) (*domain.ExpenseReceipt, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelExpenseReceipt(receipt)
	receiptQuery := `
		INSERT INTO expense_receipts (receipt_date, active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, TRUE, $2, $3, $4, $5)
		RETURNING receipt_id;
	`
	err = tx.QueryRow(ctx, receiptQuery,
		m.ReceiptDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ReceiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert expense receipt", translateError(err))
	}
	m.Active = true

	detailQuery := `
		INSERT INTO expense_receipt_details (receipt_id, line_no, concept_id, amount)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	saved := make([]models.ExpenseReceiptDetail, 0, len(details))
	for _, d := range details {
		dm := models.ExpenseReceiptDetail{
			ReceiptID: m.ReceiptID,
			LineNo:    d.LineNo,
			ConceptID: d.ConceptID,
			Amount:    d.Amount,
		}
		batch.Queue(detailQuery, dm.ReceiptID, dm.LineNo, dm.ConceptID, dm.Amount)
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
			return nil, apperrors.NewAppError(500, "failed to insert expense receipt detail", err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close detail batch", translateError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created := mapping.ToDomainExpenseReceipt(m)
	created.Details = mapping.ToDomainExpenseDetailSlice(saved)
	return &created, nil
}

// VoidExpenseReceipt flips the receipt inactive, same semantics as the
// income side.
func (r *PgxExpenseReceiptRepository) VoidExpenseReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error {
	query := `
		UPDATE expense_receipts
		SET active = FALSE, voided_at = $2, voided_by = $3, last_updated_at = $2, last_updated_by = $3
		WHERE receipt_id = $1 AND active;
	`
	tag, err := r.Pool.Exec(ctx, query, receiptID, voidedAt, voidedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to void expense receipt", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM expense_receipts WHERE receipt_id = $1);`, receiptID).Scan(&exists)
		if err != nil {
			return apperrors.NewAppError(500, "failed to check expense receipt existence", err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrAlreadyVoid
	}
	return nil
}

// FindExpenseReceiptByID retrieves an expense receipt with its details.
func (r *PgxExpenseReceiptRepository) FindExpenseReceiptByID(ctx context.Context, receiptID int64) (*domain.ExpenseReceipt, error) {
	query := `
		SELECT receipt_id, receipt_date, active, voided_at, voided_by,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM expense_receipts
		WHERE receipt_id = $1;
	`
	var m models.ExpenseReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID, &m.ReceiptDate, &m.Active, &m.VoidedAt, &m.VoidedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find expense receipt", err)
	}

	detailQuery := `
		SELECT detail_id, receipt_id, line_no, concept_id, amount
		FROM expense_receipt_details
		WHERE receipt_id = $1
		ORDER BY line_no ASC;
	`
	rows, err := r.Pool.Query(ctx, detailQuery, receiptID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense details", err)
	}
	defer rows.Close()

	details := []models.ExpenseReceiptDetail{}
	for rows.Next() {
		var d models.ExpenseReceiptDetail
		if err := rows.Scan(&d.DetailID, &d.ReceiptID, &d.LineNo, &d.ConceptID, &d.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan expense detail row", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating expense detail rows", err)
	}

	receipt := mapping.ToDomainExpenseReceipt(m)
	receipt.Details = mapping.ToDomainExpenseDetailSlice(details)
	return &receipt, nil
}
