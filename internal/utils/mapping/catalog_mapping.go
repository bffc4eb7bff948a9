package mapping

import (
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:    d.ClientID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// ToModelStand converts a domain Stand to a model Stand
func ToModelStand(d domain.Stand) models.Stand {
	return models.Stand{
		StandID:     d.StandID,
		ClientID:    d.ClientID,
		Code:        d.Code,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStand converts a model Stand to a domain Stand
func ToDomainStand(m models.Stand) domain.Stand {
	return domain.Stand{
		StandID:     m.StandID,
		ClientID:    m.ClientID,
		Code:        m.Code,
		Description: m.Description,
		ClientName:  m.ClientName,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStandSlice converts a slice of model Stands to domain Stands
func ToDomainStandSlice(ms []models.Stand) []domain.Stand {
	ds := make([]domain.Stand, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStand(m)
	}
	return ds
}

// ToModelConcept converts a domain Concept to a model Concept
func ToModelConcept(d domain.Concept) models.Concept {
	return models.Concept{
		ConceptID:   d.ConceptID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConcept converts a model Concept to a domain Concept
func ToDomainConcept(m models.Concept) domain.Concept {
	return domain.Concept{
		ConceptID:   m.ConceptID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConceptSlice converts a slice of model Concepts to domain Concepts
func ToDomainConceptSlice(ms []models.Concept) []domain.Concept {
	ds := make([]domain.Concept, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConcept(m)
	}
	return ds
}

// ToModelPaymentMethod converts a domain PaymentMethod to a model PaymentMethod
func ToModelPaymentMethod(d domain.PaymentMethod) models.PaymentMethod {
	return models.PaymentMethod{
		PaymentMethodID: d.PaymentMethodID,
		Name:            d.Name,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Name:            m.Name,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentMethodSlice converts a slice of model PaymentMethods to domain PaymentMethods
func ToDomainPaymentMethodSlice(ms []models.PaymentMethod) []domain.PaymentMethod {
	ds := make([]domain.PaymentMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethod(m)
	}
	return ds
}
