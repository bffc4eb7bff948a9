package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DetailKind mirrors the receipt detail kind enum.
type DetailKind string

const (
	DetailDebtPayment DetailKind = "DEBT_PAYMENT"
	DetailCharge      DetailKind = "CHARGE"
)

// IncomeReceipt maps the income_receipts table.
type IncomeReceipt struct {
	ReceiptID       int64      `db:"receipt_id"`
	ReceiptDate     time.Time  `db:"receipt_date"`
	StandID         int64      `db:"stand_id"`
	PaymentMethodID int64      `db:"payment_method_id"`
	Active          bool       `db:"active"`
	VoidedAt        *time.Time `db:"voided_at"`
	VoidedBy        *string    `db:"voided_by"`
	AuditFields
}

// IncomeReceiptDetail maps the income_receipt_details table.
type IncomeReceiptDetail struct {
	DetailID   int64           `db:"detail_id"`
	ReceiptID  int64           `db:"receipt_id"`
	LineNo     int             `db:"line_no"`
	ConceptID  int64           `db:"concept_id"`
	Kind       DetailKind      `db:"kind"`
	LineItemID *int64          `db:"line_item_id"`
	Amount     decimal.Decimal `db:"amount"`
}

// ExpenseReceipt maps the expense_receipts table.
type ExpenseReceipt struct {
	ReceiptID   int64      `db:"receipt_id"`
	ReceiptDate time.Time  `db:"receipt_date"`
	Active      bool       `db:"active"`
	VoidedAt    *time.Time `db:"voided_at"`
	VoidedBy    *string    `db:"voided_by"`
	AuditFields
}

// ExpenseReceiptDetail maps the expense_receipt_details table.
type ExpenseReceiptDetail struct {
	DetailID  int64           `db:"detail_id"`
	ReceiptID int64           `db:"receipt_id"`
	LineNo    int             `db:"line_no"`
	ConceptID int64           `db:"concept_id"`
	Amount    decimal.Decimal `db:"amount"`
}
