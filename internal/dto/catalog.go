package dto

// CreateClientRequest carries the payload for registering a client.
type CreateClientRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateStandRequest carries the payload for registering a stand.
type CreateStandRequest struct {
	ClientID    int64  `json:"clientID" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
}

// CreateConceptRequest carries the payload for registering a concept.
type CreateConceptRequest struct {
	Name string `json:"name" binding:"required"`
}

// RenameConceptRequest carries the payload for relabeling a concept.
type RenameConceptRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatePaymentMethodRequest carries the payload for registering a payment method.
type CreatePaymentMethodRequest struct {
	Name string `json:"name" binding:"required"`
}
