package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Tag is a free-form product label. Products reference tags by ID.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
