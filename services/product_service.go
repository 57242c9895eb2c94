package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"admin-service/aggregate"
	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"

	"github.com/google/uuid"
)

// ProductService backs the products screen: the denormalized table with
// resolved category and tag names, CRUD, and image uploads.
type ProductService struct {
	products   repository.ProductRepo
	categories repository.CategoryRepo
	tags       repository.TagRepo
	images     *ImageStore
	notifier   notify.Notifier
}

func NewProductService(products repository.ProductRepo, categories repository.CategoryRepo, tags repository.TagRepo, images *ImageStore, notifier notify.Notifier) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		tags:       tags,
		images:     images,
		notifier:   notifier,
	}
}

// ListProductRows reads all three collections, resolves display names,
// and applies the search filter. Aggregation waits for every read;
// partial results are never returned.
func (s *ProductService) ListProductRows(ctx context.Context, query string) ([]aggregate.ProductRow, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := aggregate.ProductRows(products, categories, tags)
	return aggregate.FilterProductRows(rows, query), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.products.FindByID(ctx, productID)
}

// CreateProduct uploads the images first and stores the returned URLs
// verbatim on the document. Any upload failure aborts the create so a
// product never lands with fewer images than the caller sent.
func (s *ProductService) CreateProduct(ctx context.Context, req ProductCreateRequest, images []*multipart.FileHeader) (*models.Product, error) {
	var imageURLs []string
	for _, fileHeader := range images {
		url, err := s.images.Upload(ctx, fileHeader)
		if err != nil {
			return nil, fmt.Errorf("upload image %q: %w", fileHeader.Filename, err)
		}
		imageURLs = append(imageURLs, url)
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		Images:        imageURLs,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		TagIDs:        req.TagIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.products.Put(ctx, product)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "product",
		Action:  "create",
		ID:      product.ID.String(),
		Success: err == nil,
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req ProductUpdateRequest) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.CategoryID != nil {
		updates["category_id"] = req.CategoryID.String()
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = req.SubcategoryID.String()
	}
	if req.TagIDs != nil {
		ids := make([]string, 0, len(req.TagIDs))
		for _, id := range req.TagIDs {
			ids = append(ids, id.String())
		}
		updates["tag_ids"] = ids
	}
	if req.Images != nil {
		updates["images"] = req.Images
	}
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	err = s.products.Update(ctx, productID, updates)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "product",
		Action:  "update",
		ID:      id,
		Success: err == nil,
	})
	return err
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	err = s.products.Delete(ctx, productID)
	s.notifier.Notify(ctx, notify.Event{
		Entity:  "product",
		Action:  "delete",
		ID:      id,
		Success: err == nil,
	})
	return err
}

// PresignUpload hands the browser a presigned PUT URL so large images
// skip the service entirely.
func (s *ProductService) PresignUpload(ctx context.Context, filename, contentType string, expiresSeconds int64) (string, string, string, error) {
	return s.images.PresignUpload(ctx, filename, contentType, expiresSeconds)
}
