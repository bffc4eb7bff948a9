package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetailKind distinguishes what a receipt detail represents.
type DetailKind string

const (
	// DetailDebtPayment pays down a specific debt line item.
	DetailDebtPayment DetailKind = "DEBT_PAYMENT"
	// DetailCharge is a plain charge against a concept with no debt target.
	// Expense receipt details are always of this kind.
	DetailCharge DetailKind = "CHARGE"
)

// IncomeReceipt records money received for a stand, settled through a payment
// method and broken down into ordered details. Voiding flips Active to false
// and keeps every detail row for the audit trail; the voided receipt's
// allocations stop counting against debt balances.
type IncomeReceipt struct {
	ReceiptID       int64      `json:"receiptID"` // Sequential identifier
	ReceiptDate     time.Time  `json:"receiptDate"`
	StandID         int64      `json:"standID"`
	PaymentMethodID int64      `json:"paymentMethodID"`
	Active          bool       `json:"active"`
	VoidedAt        *time.Time `json:"voidedAt,omitempty"`
	VoidedBy        *string    `json:"voidedBy,omitempty"`
	AuditFields
	Details []ReceiptDetail `json:"details,omitempty"`
}

// ReceiptDetail is one ordered line of an income receipt: an amount applied
// to a concept and, for DEBT_PAYMENT details, to one debt line item.
type ReceiptDetail struct {
	DetailID   int64           `json:"detailID"`
	ReceiptID  int64           `json:"receiptID"`
	LineNo     int             `json:"lineNo"`
	ConceptID  int64           `json:"conceptID"`
	Kind       DetailKind      `json:"kind"`
	LineItemID *int64          `json:"lineItemID,omitempty"` // Set iff Kind == DEBT_PAYMENT
	Amount     decimal.Decimal `json:"amount"`               // Positive
}

// Total sums the receipt's detail amounts.
func (r IncomeReceipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Details {
		total = total.Add(d.Amount)
	}
	return total
}

// ExpenseReceipt records money paid out. Its details reference concepts only;
// expenses are never linked to debt line items.
type ExpenseReceipt struct {
	ReceiptID   int64      `json:"receiptID"`
	ReceiptDate time.Time  `json:"receiptDate"`
	Active      bool       `json:"active"`
	VoidedAt    *time.Time `json:"voidedAt,omitempty"`
	VoidedBy    *string    `json:"voidedBy,omitempty"`
	AuditFields
	Details []ExpenseDetail `json:"details,omitempty"`
}

// ExpenseDetail is one ordered line of an expense receipt.
type ExpenseDetail struct {
	DetailID  int64           `json:"detailID"`
	ReceiptID int64           `json:"receiptID"`
	LineNo    int             `json:"lineNo"`
	ConceptID int64           `json:"conceptID"`
	Amount    decimal.Decimal `json:"amount"` // Positive
}

// Total sums the receipt's detail amounts.
func (r ExpenseReceipt) Total() decimal.Decimal {
	total := decimal.Zero
	for _, d := range r.Details {
		total = total.Add(d.Amount)
	}
	return total
}
