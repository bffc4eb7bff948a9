package domain

import "time"

// User represents an operator of the system. Every mutating operation records
// the acting user; reports resolve the creator's username on each receipt.
type User struct {
	UserID   string `json:"userID"` // Primary Key (UUID)
	Username string `json:"username"`
	Name     string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
