package repository

import (
	"context"
	"errors"

	"admin-service/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("record not found")

// The repositories below are the persistence gateway the dashboard
// talks to: full-collection reads, single-document gets, equality
// queries on one field, and fire-and-forget single-document writes.
// Put is an upsert with a caller-chosen id; Update merges the given
// attributes into the existing document. There are no transactions
// across documents — the later write wins.

type CustomerRepo interface {
	FindAll(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	FindByUserID(ctx context.Context, userID string) (*models.Customer, error)
	Put(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepo interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Order, error)
	Put(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	// FindByCategoryID backs the category delete guard, which must see
	// the live store rather than an aggregated snapshot.
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	Put(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Put(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TagRepo interface {
	FindAll(ctx context.Context) ([]models.Tag, error)
	Put(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AddressRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Address, error)
	Put(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}
