package repositories

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by id, excluding soft-deleted users.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, excluding soft-deleted users.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves all non-deleted users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with the given password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// DeleteUser soft-deletes a user.
	DeleteUser(ctx context.Context, userID string, deletedBy string) error
}

// UserRepositoryFacade combines user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
