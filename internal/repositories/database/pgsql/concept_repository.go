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

// PgxConceptRepository persists billing concepts in PostgreSQL.
type PgxConceptRepository struct {
	BaseRepository
}

// NewConceptRepository creates a new repository for concept data.
func NewConceptRepository(pool *pgxpool.Pool) portsrepo.ConceptRepositoryFacade {
	return &PgxConceptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ConceptRepositoryFacade = (*PgxConceptRepository)(nil)

// SaveConcept inserts a concept and returns it with its generated id.
func (r *PgxConceptRepository) SaveConcept(ctx context.Context, concept domain.Concept) (*domain.Concept, error) {
	m := mapping.ToModelConcept(concept)
	query := `
		INSERT INTO concepts (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING concept_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ConceptID)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to insert concept", err)
	}

	created := mapping.ToDomainConcept(m)
	return &created, nil
}

// UpdateConceptName changes a concept's label in place. The id is never
// touched, so existing line items and receipt details keep their reference.
func (r *PgxConceptRepository) UpdateConceptName(ctx context.Context, conceptID int64, name string, updatedBy string) (*domain.Concept, error) {
	query := `
		UPDATE concepts
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE concept_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, conceptID, name, time.Now(), updatedBy)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to update concept", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.FindConceptByID(ctx, conceptID)
}

// FindConceptByID retrieves a concept by its id.
func (r *PgxConceptRepository) FindConceptByID(ctx context.Context, conceptID int64) (*domain.Concept, error) {
	query := `
		SELECT concept_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM concepts
		WHERE concept_id = $1;
	`
	var m models.Concept
	err := r.Pool.QueryRow(ctx, query, conceptID).Scan(
		&m.ConceptID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find concept", err)
	}

	concept := mapping.ToDomainConcept(m)
	return &concept, nil
}

// ListConcepts retrieves all concepts ordered by id ascending.
func (r *PgxConceptRepository) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	query := `
		SELECT concept_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM concepts
		ORDER BY concept_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query concepts", err)
	}
	defer rows.Close()

	concepts := []models.Concept{}
	for rows.Next() {
		var m models.Concept
		if err := rows.Scan(&m.ConceptID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan concept row", err)
		}
		concepts = append(concepts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating concept rows", err)
	}

	return mapping.ToDomainConceptSlice(concepts), nil
}
