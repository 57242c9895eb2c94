package services

import "github.com/google/uuid"

// Request payloads for the dashboard's write operations. Fields with
// pointer types are merge-patched: nil means "leave as is".

type ProductCreateRequest struct {
	Name          string
	Description   string
	Price         string
	Stock         string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	TagIDs        []uuid.UUID
}

type ProductUpdateRequest struct {
	Name          *string
	Description   *string
	Price         *string
	Stock         *string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	TagIDs        []uuid.UUID
	Images        []string
}

type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type TagCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type CustomerUpdateRequest struct {
	Email             *string
	Name              *string
	BillingAddressID  *uuid.UUID
	ShippingAddressID *uuid.UUID
}

type OrderUpdateRequest struct {
	PaymentStatus *string `json:"payment_status"`
}

type AddressCreateRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	Label      string `json:"label"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type AddressUpdateRequest struct {
	Label      *string `json:"label"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}
