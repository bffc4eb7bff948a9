package services

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
)

// ClientSvcFacade defines client catalog operations.
type ClientSvcFacade interface {
	// CreateClient registers a billed party. Fails with
	// apperrors.ErrValidation when the name is blank.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// GetClientByID retrieves a single client.
	GetClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients returns all clients ordered by id ascending.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// StandSvcFacade defines stand catalog operations.
type StandSvcFacade interface {
	// CreateStand registers a rentable unit owned by an existing client.
	CreateStand(ctx context.Context, req dto.CreateStandRequest, creatorUserID string) (*domain.Stand, error)

	// GetStandByID retrieves a single stand with its owning client resolved.
	GetStandByID(ctx context.Context, standID int64) (*domain.Stand, error)

	// ListStands returns all stands ordered by id ascending.
	ListStands(ctx context.Context) ([]domain.Stand, error)
}

// ConceptSvcFacade defines concept catalog operations.
type ConceptSvcFacade interface {
	// CreateConcept registers a charge/expense category.
	CreateConcept(ctx context.Context, req dto.CreateConceptRequest, creatorUserID string) (*domain.Concept, error)

	// RenameConcept changes a concept's label; its identity never changes.
	RenameConcept(ctx context.Context, conceptID int64, req dto.RenameConceptRequest, updaterUserID string) (*domain.Concept, error)

	// GetConceptByID retrieves a single concept.
	GetConceptByID(ctx context.Context, conceptID int64) (*domain.Concept, error)

	// ListConcepts returns all concepts ordered by id ascending.
	ListConcepts(ctx context.Context) ([]domain.Concept, error)
}

// PaymentMethodSvcFacade defines payment method catalog operations.
type PaymentMethodSvcFacade interface {
	// CreatePaymentMethod registers a settlement channel.
	CreatePaymentMethod(ctx context.Context, req dto.CreatePaymentMethodRequest, creatorUserID string) (*domain.PaymentMethod, error)

	// GetPaymentMethodByID retrieves a single payment method.
	GetPaymentMethodByID(ctx context.Context, paymentMethodID int64) (*domain.PaymentMethod, error)

	// ListPaymentMethods returns all payment methods ordered by id ascending.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
