package models

// Client maps the clients table.
type Client struct {
	ClientID int64  `db:"client_id"`
	Name     string `db:"name"`
	AuditFields
}

// Stand maps the stands table. ClientName is populated by joined reads only.
type Stand struct {
	StandID     int64  `db:"stand_id"`
	ClientID    int64  `db:"client_id"`
	Code        string `db:"code"`
	Description string `db:"description"`
	ClientName  string `db:"-"`
	AuditFields
}

// Concept maps the concepts table.
type Concept struct {
	ConceptID int64  `db:"concept_id"`
	Name      string `db:"name"`
	AuditFields
}

// PaymentMethod maps the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID int64  `db:"payment_method_id"`
	Name            string `db:"name"`
	AuditFields
}
