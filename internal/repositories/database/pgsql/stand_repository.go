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

// PgxStandRepository persists stands in PostgreSQL.
type PgxStandRepository struct {
	BaseRepository
}

// NewStandRepository creates a new repository for stand data.
func NewStandRepository(pool *pgxpool.Pool) portsrepo.StandRepositoryFacade {
	return &PgxStandRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StandRepositoryFacade = (*PgxStandRepository)(nil)

// SaveStand inserts a stand and returns it with its generated id. The owning
// client must exist; a missing client surfaces as ErrNotFound from the FK.
func (r *PgxStandRepository) SaveStand(ctx context.Context, stand domain.Stand) (*domain.Stand, error) {
	m := mapping.ToModelStand(stand)
	query := `
		INSERT INTO stands (client_id, code, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING stand_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ClientID, m.Code, m.Description, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.StandID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert stand", err)
	}

	return r.FindStandByID(ctx, m.StandID)
}

// FindStandByID retrieves a stand with its owning client's name resolved.
func (r *PgxStandRepository) FindStandByID(ctx context.Context, standID int64) (*domain.Stand, error) {
	query := `
		SELECT s.stand_id, s.client_id, s.code, s.description, c.name,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM stands s
		JOIN clients c ON s.client_id = c.client_id
		WHERE s.stand_id = $1;
	`
	var m models.Stand
	err := r.Pool.QueryRow(ctx, query, standID).Scan(
		&m.StandID, &m.ClientID, &m.Code, &m.Description, &m.ClientName,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stand", err)
	}

	stand := mapping.ToDomainStand(m)
	return &stand, nil
}

// ListStands retrieves all stands ordered by id ascending, client names resolved.
func (r *PgxStandRepository) ListStands(ctx context.Context) ([]domain.Stand, error) {
	query := `
		SELECT s.stand_id, s.client_id, s.code, s.description, c.name,
		       s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM stands s
		JOIN clients c ON s.client_id = c.client_id
		ORDER BY s.stand_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stands", err)
	}
	defer rows.Close()

	stands := []models.Stand{}
	for rows.Next() {
		var m models.Stand
		if err := rows.Scan(
			&m.StandID, &m.ClientID, &m.Code, &m.Description, &m.ClientName,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stand row", err)
		}
		stands = append(stands, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stand rows", err)
	}

	return mapping.ToDomainStandSlice(stands), nil
}
