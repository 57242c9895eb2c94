package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item. Price and Stock are kept as text because
// the storefront stores them that way; the aggregate layer parses them
// forgivingly (unparseable degrades to zero, never errors).
type Product struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	Price         string      `json:"price"`
	Stock         string      `json:"stock"`
	Images        []string    `json:"images,omitempty"`
	CategoryID    *uuid.UUID  `json:"category_id,omitempty"`
	SubcategoryID *uuid.UUID  `json:"subcategory_id,omitempty"`
	TagIDs        []uuid.UUID `json:"tag_ids,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
