package mapping

import (
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
)

// ToModelDebtHeader converts a domain DebtHeader to a model DebtHeader
func ToModelDebtHeader(d domain.DebtHeader) models.DebtHeader {
	return models.DebtHeader{
		DebtID:      d.DebtID,
		StandID:     d.StandID,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebtHeader converts a model DebtHeader to a domain DebtHeader
func ToDomainDebtHeader(m models.DebtHeader) domain.DebtHeader {
	return domain.DebtHeader{
		DebtID:      m.DebtID,
		StandID:     m.StandID,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDebtLineItem converts a domain DebtLineItem to a model DebtLineItem
func ToModelDebtLineItem(d domain.DebtLineItem) models.DebtLineItem {
	return models.DebtLineItem{
		LineItemID:  d.LineItemID,
		DebtID:      d.DebtID,
		ConceptID:   d.ConceptID,
		StandID:     d.StandID,
		AmountDue:   d.AmountDue,
		Period:      d.Period,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebtLineItem converts a model DebtLineItem to a domain DebtLineItem
func ToDomainDebtLineItem(m models.DebtLineItem) domain.DebtLineItem {
	return domain.DebtLineItem{
		LineItemID:  m.LineItemID,
		DebtID:      m.DebtID,
		ConceptID:   m.ConceptID,
		StandID:     m.StandID,
		AmountDue:   m.AmountDue,
		Period:      m.Period,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtLineItemSlice converts model DebtLineItems to domain DebtLineItems
func ToDomainDebtLineItemSlice(ms []models.DebtLineItem) []domain.DebtLineItem {
	ds := make([]domain.DebtLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebtLineItem(m)
	}
	return ds
}
