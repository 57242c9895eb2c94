package controllers

import (
	"context"
	"mime/multipart"
	"time"

	"admin-service/aggregate"
	"admin-service/models"
	"admin-service/services"
)

// Default configuration values
const (
	DefaultCacheTTL       = 10 * time.Minute
	DefaultContextTimeout = 30 * time.Second
)

// The interfaces below are what the controllers depend on; tests swap
// in fakes.

type CustomerServiceAPI interface {
	ListCustomerRows(ctx context.Context, query string) ([]aggregate.CustomerRow, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, []models.Order, error)
	GetCustomerAddresses(ctx context.Context, id string) ([]models.Address, error)
	UpdateCustomer(ctx context.Context, id string, req services.CustomerUpdateRequest) error
	DeleteCustomer(ctx context.Context, id string) error
}

type ProductServiceAPI interface {
	ListProductRows(ctx context.Context, query string) ([]aggregate.ProductRow, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req services.ProductCreateRequest, images []*multipart.FileHeader) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req services.ProductUpdateRequest) error
	DeleteProduct(ctx context.Context, id string) error
	PresignUpload(ctx context.Context, filename, contentType string, expiresSeconds int64) (string, string, string, error)
}

type CategoryServiceAPI interface {
	ListCategoryRows(ctx context.Context, query string) ([]aggregate.CategoryRow, error)
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	CreateCategory(ctx context.Context, req services.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req services.CategoryCreateRequest) error
	DeleteCategory(ctx context.Context, id string) error
}

type TagServiceAPI interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreateTag(ctx context.Context, req services.TagCreateRequest) (*models.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}

type OrderServiceAPI interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrder(ctx context.Context, id string, req services.OrderUpdateRequest) error
	DeleteOrder(ctx context.Context, id string) error
}

type AddressServiceAPI interface {
	ListForUser(ctx context.Context, userID string) ([]models.Address, error)
	CreateAddress(ctx context.Context, req services.AddressCreateRequest) (*models.Address, error)
	UpdateAddress(ctx context.Context, id string, req services.AddressUpdateRequest) error
	DeleteAddress(ctx context.Context, id string) error
}
