package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDebtLineItemRequest is one payable line of a new debt.
type CreateDebtLineItemRequest struct {
	ConceptID int64           `json:"conceptID" binding:"required"`
	AmountDue decimal.Decimal `json:"amountDue" binding:"required"`
	Period    time.Time       `json:"period" binding:"required"`
}

// CreateDebtRequest carries the payload for assessing a debt against a stand.
type CreateDebtRequest struct {
	StandID     int64                       `json:"standID" binding:"required"`
	Description string                      `json:"description"`
	LineItems   []CreateDebtLineItemRequest `json:"lineItems" binding:"required,min=1,dive"`
}
