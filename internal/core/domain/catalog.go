package domain

// Client is a billed party. Clients are never hard-deleted because receipts
// and debts reference them through their stands.
type Client struct {
	ClientID int64  `json:"clientID"` // Primary Key (sequential)
	Name     string `json:"name"`
	AuditFields
}

// Stand is a rentable unit occupied by a single client. A stand accumulates
// debt line items and is the anchor for income receipts.
type Stand struct {
	StandID     int64  `json:"standID"`
	ClientID    int64  `json:"clientID"` // FK -> clients.client_id
	Code        string `json:"code"`     // Short unit label, e.g. "A-12"
	Description string `json:"description"`
	ClientName  string `json:"clientName,omitempty"` // Resolved on reads; not persisted
	AuditFields
}

// Concept is a named charge/expense category shared by debt line items and
// expense receipt details. Identity is immutable; the label may be edited.
type Concept struct {
	ConceptID int64  `json:"conceptID"`
	Name      string `json:"name"`
	AuditFields
}

// PaymentMethod is an enumerated settlement channel (cash, transfer, card...)
// referenced by income receipts.
type PaymentMethod struct {
	PaymentMethodID int64  `json:"paymentMethodID"`
	Name            string `json:"name"`
	AuditFields
}
