package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is one storefront account. UserID links the customer to its
// orders and addresses; the dashboard never joins on the document ID.
type Customer struct {
	ID                uuid.UUID  `json:"id"`
	UserID            string     `json:"user_id"`
	Email             string     `json:"email,omitempty"`
	Name              string     `json:"name,omitempty"`
	BillingAddressID  *uuid.UUID `json:"billing_address_id,omitempty"`
	ShippingAddressID *uuid.UUID `json:"shipping_address_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
