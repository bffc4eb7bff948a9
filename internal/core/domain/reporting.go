package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeReceiptReport is an income receipt with its foreign relations
// resolved for the report layer: stand, client, payment method and the
// username of the operator who created it.
type IncomeReceiptReport struct {
	IncomeReceipt
	StandCode         string                      `json:"standCode"`
	ClientName        string                      `json:"clientName"`
	PaymentMethodName string                      `json:"paymentMethodName"`
	CreatedByUsername string                      `json:"createdByUsername"`
	DetailRows        []IncomeReceiptReportDetail `json:"detailRows"`
}

// IncomeReceiptReportDetail is a receipt detail with its concept resolved
// and, for debt payments, the paid line item's period.
type IncomeReceiptReportDetail struct {
	ReceiptDetail
	ConceptName string     `json:"conceptName"`
	Period      *time.Time `json:"period,omitempty"`
}

// ExpenseReceiptReport is an expense receipt with concept names and the
// creator's username resolved.
type ExpenseReceiptReport struct {
	ExpenseReceipt
	CreatedByUsername string                       `json:"createdByUsername"`
	DetailRows        []ExpenseReceiptReportDetail `json:"detailRows"`
}

// ExpenseReceiptReportDetail is an expense detail with its concept resolved.
type ExpenseReceiptReportDetail struct {
	ExpenseDetail
	ConceptName string `json:"conceptName"`
}

// ConceptSummaryRow is one flattened receipt detail joined to its concept
// and, where the detail pays a debt line item, through to the stand and
// client. Downstream consumers aggregate these rows by concept.
type ConceptSummaryRow struct {
	ReceiptID   int64           `json:"receiptID"`
	ReceiptDate time.Time       `json:"receiptDate"`
	Active      bool            `json:"active"`
	ConceptID   int64           `json:"conceptID"`
	ConceptName string          `json:"conceptName"`
	Amount      decimal.Decimal `json:"amount"`
	LineItemID  *int64          `json:"lineItemID,omitempty"`
	StandCode   *string         `json:"standCode,omitempty"`
	ClientName  *string         `json:"clientName,omitempty"`
}
