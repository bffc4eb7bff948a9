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

// PgxClientRepository persists clients in PostgreSQL.
type PgxClientRepository struct {
	BaseRepository
}

// NewClientRepository creates a new repository for client data.
func NewClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient inserts a client and returns it with its generated id.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING client_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.ClientID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert client", translateError(err))
	}

	created := mapping.ToDomainClient(m)
	return &created, nil
}

// FindClientByID retrieves a client by its id.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `
		SELECT client_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find client", err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

// ListClients retrieves all clients ordered by id ascending.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		ORDER BY client_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(&m.ClientID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client rows", err)
	}

	return mapping.ToDomainClientSlice(clients), nil
}
