package models

import "github.com/google/uuid"

// Address belongs to a customer (by UserID) and is referenced from the
// customer document as billing or shipping address.
type Address struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Label      string    `json:"label,omitempty"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
}
