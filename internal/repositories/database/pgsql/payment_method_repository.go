package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/utils/mapping"
)

// PgxPaymentMethodRepository persists payment methods in PostgreSQL.
type PgxPaymentMethodRepository struct {
	BaseRepository
}

// NewPaymentMethodRepository creates a new repository for payment method data.
func NewPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

// SavePaymentMethod inserts a payment method and returns it with its generated id.
func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	m := mapping.ToModelPaymentMethod(method)
	query := `
		INSERT INTO payment_methods (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_method_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.PaymentMethodID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert payment method", err)
	}

	created := mapping.ToDomainPaymentMethod(m)
	return &created, nil
}

// FindPaymentMethodByID retrieves a payment method by its id.
func (r *PgxPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID int64) (*domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods
		WHERE payment_method_id = $1;
	`
	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, paymentMethodID).Scan(
		&m.PaymentMethodID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find payment method", err)
	}

	method := mapping.ToDomainPaymentMethod(m)
	return &method, nil
}

// ListPaymentMethods retrieves all payment methods ordered by id ascending.
func (r *PgxPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `
		SELECT payment_method_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM payment_methods
		ORDER BY payment_method_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment methods", err)
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.PaymentMethodID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment method row", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment method rows", err)
	}

	return mapping.ToDomainPaymentMethodSlice(methods), nil
}
