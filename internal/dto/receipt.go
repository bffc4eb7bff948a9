package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeReceiptDetailRequest is one line of a new income receipt. Exactly one
// of three shapes is valid: a target line item (pays that debt), AutoAllocate
// (spread across the stand's outstanding line items oldest first), or neither
// (a plain charge against the concept).
type IncomeReceiptDetailRequest struct {
	ConceptID    int64           `json:"conceptID" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	LineItemID   *int64          `json:"lineItemID,omitempty"`
	AutoAllocate bool            `json:"autoAllocate,omitempty"`
}

// CreateIncomeReceiptRequest carries the payload for recording money received.
// Date defaults to the current time when omitted.
type CreateIncomeReceiptRequest struct {
	StandID         int64                        `json:"standID" binding:"required"`
	PaymentMethodID int64                        `json:"paymentMethodID" binding:"required"`
	Date            *time.Time                   `json:"date,omitempty"`
	Details         []IncomeReceiptDetailRequest `json:"details" binding:"required,min=1,dive"`
}

// ExpenseReceiptDetailRequest is one line of a new expense receipt.
type ExpenseReceiptDetailRequest struct {
	ConceptID int64           `json:"conceptID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// CreateExpenseReceiptRequest carries the payload for recording money paid out.
type CreateExpenseReceiptRequest struct {
	Date    *time.Time                    `json:"date,omitempty"`
	Details []ExpenseReceiptDetailRequest `json:"details" binding:"required,min=1,dive"`
}
