package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/mapping"
)

// PgxDebtRepository persists debt headers and line items in PostgreSQL.
// Balances are never stored; every read derives them from the allocations
// of active income receipts.
type PgxDebtRepository struct {
	BaseRepository
}

// NewDebtRepository creates a new repository for debt data.
func NewDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// SaveDebt inserts a debt header and all its line items in one transaction
// and returns the created header with generated ids.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, header domain.DebtHeader, lineItems []domain.DebtLineItem) (*domain.DebtHeader, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	h := mapping.ToModelDebtHeader(header)
	headerQuery := `
		INSERT INTO debt_headers (stand_id, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING debt_id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		h.StandID, h.Description, h.CreatedAt, h.CreatedBy, h.LastUpdatedAt, h.LastUpdatedBy,
	).Scan(&h.DebtID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert debt header", err)
	}

	itemQuery := `
		INSERT INTO debt_line_items (debt_id, concept_id, amount_due, period, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING line_item_id;
	`
	items := make([]models.DebtLineItem, 0, len(lineItems))
	for _, item := range lineItems {
		m := mapping.ToModelDebtLineItem(item)
		m.DebtID = h.DebtID
		m.StandID = h.StandID
		err = tx.QueryRow(ctx, itemQuery,
			m.DebtID, m.ConceptID, m.AmountDue, m.Period,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		).Scan(&m.LineItemID)
		if err != nil {
			err = translateError(err)
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			return nil, apperrors.NewAppError(500, "failed to insert debt line item", err)
		}
		items = append(items, m)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created := mapping.ToDomainDebtHeader(h)
	created.LineItems = mapping.ToDomainDebtLineItemSlice(items)
	return &created, nil
}

// FindDebtHeaderByID retrieves a debt header with its line items.
func (r *PgxDebtRepository) FindDebtHeaderByID(ctx context.Context, debtID int64) (*domain.DebtHeader, error) {
	query := `
		SELECT debt_id, stand_id, description, created_at, created_by, last_updated_at, last_updated_by
		FROM debt_headers
		WHERE debt_id = $1;
	`
	var h models.DebtHeader
	err := r.Pool.QueryRow(ctx, query, debtID).Scan(
		&h.DebtID, &h.StandID, &h.Description,
		&h.CreatedAt, &h.CreatedBy, &h.LastUpdatedAt, &h.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find debt header", err)
	}

	items, err := r.findLineItemsByDebtIDs(ctx, []int64{h.DebtID})
	if err != nil {
		return nil, err
	}

	header := mapping.ToDomainDebtHeader(h)
	header.LineItems = mapping.ToDomainDebtLineItemSlice(items[h.DebtID])
	return &header, nil
}

// ListDebtHeadersByStand retrieves a stand's debt headers with line items,
// newest header first.
func (r *PgxDebtRepository) ListDebtHeadersByStand(ctx context.Context, standID int64) ([]domain.DebtHeader, error) {
	query := `
		SELECT debt_id, stand_id, description, created_at, created_by, last_updated_at, last_updated_by
		FROM debt_headers
		WHERE stand_id = $1
		ORDER BY debt_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, standID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debt headers", err)
	}
	defer rows.Close()

	hs := []models.DebtHeader{}
	ids := []int64{}
	for rows.Next() {
		var h models.DebtHeader
		if err := rows.Scan(
			&h.DebtID, &h.StandID, &h.Description,
			&h.CreatedAt, &h.CreatedBy, &h.LastUpdatedAt, &h.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debt header row", err)
		}
		hs = append(hs, h)
		ids = append(ids, h.DebtID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating debt header rows", err)
	}

	itemsByDebt := map[int64][]models.DebtLineItem{}
	if len(ids) > 0 {
		itemsByDebt, err = r.findLineItemsByDebtIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	headers := make([]domain.DebtHeader, len(hs))
	for i, h := range hs {
		header := mapping.ToDomainDebtHeader(h)
		header.LineItems = mapping.ToDomainDebtLineItemSlice(itemsByDebt[h.DebtID])
		headers[i] = header
	}
	return headers, nil
}

// FindOutstandingByStand returns the stand's line items whose derived
// remaining balance is positive, oldest period first. Only allocations from
// active receipts count against the balance, so voiding a receipt restores
// its targets here without any compensating write.
func (r *PgxDebtRepository) FindOutstandingByStand(ctx context.Context, standID int64) ([]domain.OutstandingLineItem, error) {
	query := `
		SELECT li.line_item_id, li.debt_id, li.concept_id, dh.stand_id, li.amount_due, li.period,
		       li.created_at, li.created_by, li.last_updated_at, li.last_updated_by,
		       co.name, COALESCE(alloc.total, 0)
		FROM debt_line_items li
		JOIN debt_headers dh ON li.debt_id = dh.debt_id
		JOIN concepts co ON li.concept_id = co.concept_id
		LEFT JOIN (
			SELECT d.line_item_id, SUM(d.amount) AS total
			FROM income_receipt_details d
			JOIN income_receipts r ON d.receipt_id = r.receipt_id
			WHERE r.active AND d.line_item_id IS NOT NULL
			GROUP BY d.line_item_id
		) alloc ON li.line_item_id = alloc.line_item_id
		WHERE dh.stand_id = $1 AND li.amount_due - COALESCE(alloc.total, 0) > 0
		ORDER BY li.period ASC, li.line_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, standID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query outstanding line items", err)
	}
	defer rows.Close()

	outstanding := []domain.OutstandingLineItem{}
	for rows.Next() {
		var m models.DebtLineItem
		var conceptName string
		var allocated decimal.Decimal
		if err := rows.Scan(
			&m.LineItemID, &m.DebtID, &m.ConceptID, &m.StandID, &m.AmountDue, &m.Period,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
			&conceptName, &allocated,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan outstanding row", err)
		}
		outstanding = append(outstanding, domain.OutstandingLineItem{
			DebtLineItem:     mapping.ToDomainDebtLineItem(m),
			ConceptName:      conceptName,
			RemainingBalance: domain.RemainingBalance(m.AmountDue, allocated),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating outstanding rows", err)
	}

	return outstanding, nil
}

// FindLineItemByID retrieves a single debt line item, stand resolved
// through its header.
func (r *PgxDebtRepository) FindLineItemByID(ctx context.Context, lineItemID int64) (*domain.DebtLineItem, error) {
	query := `
		SELECT li.line_item_id, li.debt_id, li.concept_id, dh.stand_id, li.amount_due, li.period,
		       li.created_at, li.created_by, li.last_updated_at, li.last_updated_by
		FROM debt_line_items li
		JOIN debt_headers dh ON li.debt_id = dh.debt_id
		WHERE li.line_item_id = $1;
	`
	var m models.DebtLineItem
	err := r.Pool.QueryRow(ctx, query, lineItemID).Scan(
		&m.LineItemID, &m.DebtID, &m.ConceptID, &m.StandID, &m.AmountDue, &m.Period,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find debt line item", err)
	}

	item := mapping.ToDomainDebtLineItem(m)
	return &item, nil
}

func (r *PgxDebtRepository) findLineItemsByDebtIDs(ctx context.Context, debtIDs []int64) (map[int64][]models.DebtLineItem, error) {
	query := `
		SELECT li.line_item_id, li.debt_id, li.concept_id, dh.stand_id, li.amount_due, li.period,
		       li.created_at, li.created_by, li.last_updated_at, li.last_updated_by
		FROM debt_line_items li
		JOIN debt_headers dh ON li.debt_id = dh.debt_id
		WHERE li.debt_id = ANY($1)
		ORDER BY li.line_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, debtIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query debt line items", err)
	}
	defer rows.Close()

	byDebt := map[int64][]models.DebtLineItem{}
	for rows.Next() {
		var m models.DebtLineItem
		if err := rows.Scan(
			&m.LineItemID, &m.DebtID, &m.ConceptID, &m.StandID, &m.AmountDue, &m.Period,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan debt line item row", err)
		}
		byDebt[m.DebtID] = append(byDebt[m.DebtID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating debt line item rows", err)
	}

	return byDebt, nil
}
