package services

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// UserSvcFacade defines operator catalog operations. Session issuance is out
// of scope; callers arrive already authenticated.
type UserSvcFacade interface {
	// CreateUser registers an operator with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a single user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns all non-deleted users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser soft-deletes a user; history keeps referencing it.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}
