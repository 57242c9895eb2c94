package services

import (
	"context"
	"errors"
	"time"

	"admin-service/aggregate"
	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"

	"github.com/google/uuid"
)

// CategoryService backs the categories screen.
type CategoryService struct {
	categories repository.CategoryRepo
	products   repository.ProductRepo
	notifier   notify.Notifier
}

func NewCategoryService(categories repository.CategoryRepo, products repository.ProductRepo, notifier notify.Notifier) *CategoryService {
	return &CategoryService{categories: categories, products: products, notifier: notifier}
}

// ListCategoryRows reads both collections, counts products per
// category, and applies the search filter.
func (s *CategoryService) ListCategoryRows(ctx context.Context, query string) ([]aggregate.CategoryRow, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := aggregate.CategoryRows(categories, products)
	return aggregate.FilterCategoryRows(rows, query), nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	categoryID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.categories.FindByID(ctx, categoryID)
}

// CreateCategory refuses duplicate names; the storefront joins products
// to categories by id, but the dashboard lists them by name.
func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, error) {
	_, err := s.categories.FindByName(ctx, req.Name)
	if err == nil {
		return nil, ErrDuplicateCategory
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	category := &models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	err = s.categories.Put(ctx, category)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "category",
		Action:  "create",
		ID:      category.ID.String(),
		Success: err == nil,
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req CategoryCreateRequest) error {
	categoryID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return err
	}

	err = s.categories.Update(ctx, categoryID, map[string]interface{}{"name": req.Name})
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "category",
		Action:  "update",
		ID:      id,
		Success: err == nil,
	})
	return err
}

// DeleteCategory deletes a category only while no product references
// it. The table row's product count comes from a snapshot that may be
// stale, so the guard re-queries the live store immediately before the
// destructive call.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return err
	}

	products, err := s.products.FindByCategoryID(ctx, categoryID)
	if err != nil {
		return err
	}
	if len(products) > 0 {
		s.notifier.Notify(ctx, notify.Event{
			Entity:  "category",
			Action:  "delete",
			ID:      id,
			Success: false,
			Message: ErrCategoryHasProducts.Error(),
		})
		return ErrCategoryHasProducts
	}

	err = s.categories.Delete(ctx, categoryID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "category",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}
