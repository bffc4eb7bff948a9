package mapping

import (
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/models"
)

// ToModelIncomeReceipt converts a domain IncomeReceipt to a model IncomeReceipt
func ToModelIncomeReceipt(d domain.IncomeReceipt) models.IncomeReceipt {
	return models.IncomeReceipt{
		ReceiptID:       d.ReceiptID,
		ReceiptDate:     d.ReceiptDate,
		StandID:         d.StandID,
		PaymentMethodID: d.PaymentMethodID,
		Active:          d.Active,
		VoidedAt:        d.VoidedAt,
		VoidedBy:        d.VoidedBy,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIncomeReceipt converts a model IncomeReceipt to a domain IncomeReceipt
func ToDomainIncomeReceipt(m models.IncomeReceipt) domain.IncomeReceipt {
	return domain.IncomeReceipt{
		ReceiptID:       m.ReceiptID,
		ReceiptDate:     m.ReceiptDate,
		StandID:         m.StandID,
		PaymentMethodID: m.PaymentMethodID,
		Active:          m.Active,
		VoidedAt:        m.VoidedAt,
		VoidedBy:        m.VoidedBy,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelIncomeReceiptDetail converts a domain ReceiptDetail to its model
func ToModelIncomeReceiptDetail(d domain.ReceiptDetail) models.IncomeReceiptDetail {
	return models.IncomeReceiptDetail{
		DetailID:   d.DetailID,
		ReceiptID:  d.ReceiptID,
		LineNo:     d.LineNo,
		ConceptID:  d.ConceptID,
		Kind:       models.DetailKind(d.Kind),
		LineItemID: d.LineItemID,
		Amount:     d.Amount,
	}
}

// ToDomainIncomeReceiptDetail converts a model IncomeReceiptDetail to a domain ReceiptDetail
func ToDomainIncomeReceiptDetail(m models.IncomeReceiptDetail) domain.ReceiptDetail {
	return domain.ReceiptDetail{
		DetailID:   m.DetailID,
		ReceiptID:  m.ReceiptID,
		LineNo:     m.LineNo,
		ConceptID:  m.ConceptID,
		Kind:       domain.DetailKind(m.Kind),
		LineItemID: m.LineItemID,
		Amount:     m.Amount,
	}
}

// ToDomainIncomeReceiptDetailSlice converts model details to domain details
func ToDomainIncomeReceiptDetailSlice(ms []models.IncomeReceiptDetail) []domain.ReceiptDetail {
	ds := make([]domain.ReceiptDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIncomeReceiptDetail(m)
	}
	return ds
}

// ToModelExpenseReceipt converts a domain ExpenseReceipt to a model ExpenseReceipt
func ToModelExpenseReceipt(d domain.ExpenseReceipt) models.ExpenseReceipt {
	return models.ExpenseReceipt{
		ReceiptID:   d.ReceiptID,
		ReceiptDate: d.ReceiptDate,
		Active:      d.Active,
		VoidedAt:    d.VoidedAt,
		VoidedBy:    d.VoidedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpenseReceipt converts a model ExpenseReceipt to a domain ExpenseReceipt
func ToDomainExpenseReceipt(m models.ExpenseReceipt) domain.ExpenseReceipt {
	return domain.ExpenseReceipt{
		ReceiptID:   m.ReceiptID,
		ReceiptDate: m.ReceiptDate,
		Active:      m.Active,
		VoidedAt:    m.VoidedAt,
		VoidedBy:    m.VoidedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseDetail converts a model ExpenseReceiptDetail to a domain ExpenseDetail
func ToDomainExpenseDetail(m models.ExpenseReceiptDetail) domain.ExpenseDetail {
	return domain.ExpenseDetail{
		DetailID:  m.DetailID,
		ReceiptID: m.ReceiptID,
		LineNo:    m.LineNo,
		ConceptID: m.ConceptID,
		Amount:    m.Amount,
	}
}

// ToDomainExpenseDetailSlice converts model expense details to domain details
func ToDomainExpenseDetailSlice(ms []models.ExpenseReceiptDetail) []domain.ExpenseDetail {
	ds := make([]domain.ExpenseDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpenseDetail(m)
	}
	return ds
}
