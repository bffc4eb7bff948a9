package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtHeader maps the debt_headers table.
type DebtHeader struct {
	DebtID      int64  `db:"debt_id"`
	StandID     int64  `db:"stand_id"`
	Description string `db:"description"`
	AuditFields
}

// DebtLineItem maps the debt_line_items table. StandID is resolved through
// the header on reads.
type DebtLineItem struct {
	LineItemID int64           `db:"line_item_id"`
	DebtID     int64           `db:"debt_id"`
	ConceptID  int64           `db:"concept_id"`
	StandID    int64           `db:"-"`
	AmountDue  decimal.Decimal `db:"amount_due"`
	Period     time.Time       `db:"period"`
	AuditFields
}
