package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtHeader groups one or more debt line items assessed against a stand.
// A header is never deleted once any of its line items has an allocation.
type DebtHeader struct {
	DebtID      int64  `json:"debtID"`
	StandID     int64  `json:"standID"` // FK -> stands.stand_id
	Description string `json:"description"`
	AuditFields
	LineItems []DebtLineItem `json:"lineItems,omitempty"`
}

// DebtLineItem is the individual payable unit of a debt: one concept, one
// period, one amount due. Its remaining balance is derived, never stored:
// amount due minus the sum of allocations from active income receipts.
type DebtLineItem struct {
	LineItemID int64           `json:"lineItemID"`
	DebtID     int64           `json:"debtID"`    // FK -> debt_headers.debt_id
	ConceptID  int64           `json:"conceptID"` // FK -> concepts.concept_id
	StandID    int64           `json:"standID"`   // Resolved through the header
	AmountDue  decimal.Decimal `json:"amountDue"` // Positive
	Period     time.Time       `json:"period"`    // Billing period (first day of month)
	AuditFields
}

// OutstandingLineItem pairs a debt line item with its remaining balance at
// read time. getOutstanding returns only items whose balance is positive,
// ordered oldest period first, lowest id as tie-break; that ordering is the
// policy auto-allocation uses to pay the oldest debt first.
type OutstandingLineItem struct {
	DebtLineItem
	ConceptName      string          `json:"conceptName"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// RemainingBalance computes a line item's balance from its amount due and
// the total already allocated by active receipts. The result is clamped at
// zero so a caller can never observe a negative balance.
func RemainingBalance(amountDue, allocated decimal.Decimal) decimal.Decimal {
	remaining := amountDue.Sub(allocated)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
