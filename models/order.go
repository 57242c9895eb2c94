package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is a product line embedded in an order document.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
}

// Order is a placed order. Monetary fields are decimal-as-text exactly
// as the storefront wrote them; parsing happens in the aggregate layer.
type Order struct {
	ID                uuid.UUID   `json:"id"`
	OrderNumber       string      `json:"order_number"`
	UserID            string      `json:"user_id"`
	Items             []OrderItem `json:"items,omitempty"`
	Subtotal          string      `json:"subtotal,omitempty"`
	TotalAmount       string      `json:"total_amount"`
	PaymentStatus     string      `json:"payment_status"`
	ShippingAddressID *uuid.UUID  `json:"shipping_address_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
}

// Payment statuses written by the storefront checkout flow.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)
