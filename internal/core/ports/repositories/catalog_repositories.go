package repositories

import (
	"context"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a client by its identifier.
	FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error)

	// ListClients retrieves all clients ordered by id ascending.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client and returns it with its generated id.
	SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error)
}

// ClientRepositoryFacade combines client repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// StandReader defines read operations for stand data
type StandReader interface {
	// FindStandByID retrieves a stand by its identifier, owning client resolved.
	FindStandByID(ctx context.Context, standID int64) (*domain.Stand, error)

	// ListStands retrieves all stands ordered by id ascending, owning client resolved.
	ListStands(ctx context.Context) ([]domain.Stand, error)
}

// StandWriter defines write operations for stand data
type StandWriter interface {
	// SaveStand persists a new stand and returns it with its generated id.
	SaveStand(ctx context.Context, stand domain.Stand) (*domain.Stand, error)
}

// StandRepositoryFacade combines stand repository interfaces
type StandRepositoryFacade interface {
	StandReader
	StandWriter
}

// ConceptReader defines read operations for concept data
type ConceptReader interface {
	// FindConceptByID retrieves a concept by its identifier.
	FindConceptByID(ctx context.Context, conceptID int64) (*domain.Concept, error)

	// ListConcepts retrieves all concepts ordered by id ascending.
	ListConcepts(ctx context.Context) ([]domain.Concept, error)
}

// ConceptWriter defines write operations for concept data
type ConceptWriter interface {
	// SaveConcept persists a new concept and returns it with its generated id.
	SaveConcept(ctx context.Context, concept domain.Concept) (*domain.Concept, error)

	// UpdateConceptName changes a concept's label. Identity is immutable.
	UpdateConceptName(ctx context.Context, conceptID int64, name string, updatedBy string) (*domain.Concept, error)
}

// ConceptRepositoryFacade combines concept repository interfaces
type ConceptRepositoryFacade interface {
	ConceptReader
	ConceptWriter
}

// PaymentMethodReader defines read operations for payment method data
type PaymentMethodReader interface {
	// FindPaymentMethodByID retrieves a payment method by its identifier.
	FindPaymentMethodByID(ctx context.Context, paymentMethodID int64) (*domain.PaymentMethod, error)

	// ListPaymentMethods retrieves all payment methods ordered by id ascending.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment method data
type PaymentMethodWriter interface {
	// SavePaymentMethod persists a new payment method and returns it with its generated id.
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error)
}

// PaymentMethodRepositoryFacade combines payment method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
