package services_test

import (
	"context"
	"testing"

	"admin-service/models"
	"admin-service/notify"
	"admin-service/repository"
	"admin-service/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Mock repositories ---

type mockCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
	deleted    []uuid.UUID
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (m *mockCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) FindByName(_ context.Context, name string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCategoryRepo) Put(_ context.Context, category *models.Category) error {
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	c, ok := m.categories[id]
	if !ok {
		return repository.ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		c.Name = name
	}
	return nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.categories, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockProductRepo struct {
	products map[uuid.UUID]*models.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) FindByCategoryID(_ context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Put(_ context.Context, product *models.Product) error {
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id uuid.UUID, _ map[string]interface{}) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.products, id)
	return nil
}

// recordingNotifier captures dispatched events.
type recordingNotifier struct {
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, event notify.Event) {
	r.events = append(r.events, event)
}

// --- Tests ---

func TestDeleteCategory_RefusesWhileProductsRemain(t *testing.T) {
	catRepo := newMockCategoryRepo()
	prodRepo := newMockProductRepo()
	notifier := &recordingNotifier{}
	svc := services.NewCategoryService(catRepo, prodRepo, notifier)

	category := &models.Category{ID: uuid.New(), Name: "Books"}
	catRepo.Put(context.Background(), category)
	prodRepo.Put(context.Background(), &models.Product{ID: uuid.New(), CategoryID: &category.ID})

	err := svc.DeleteCategory(context.Background(), category.ID.String())

	assert.ErrorIs(t, err, services.ErrCategoryHasProducts)
	assert.Empty(t, catRepo.deleted, "destructive call must not be issued")
	assert.Len(t, notifier.events, 1)
	assert.False(t, notifier.events[0].Success)
}

func TestDeleteCategory_SucceedsWhenEmpty(t *testing.T) {
	catRepo := newMockCategoryRepo()
	prodRepo := newMockProductRepo()
	svc := services.NewCategoryService(catRepo, prodRepo, &recordingNotifier{})

	category := &models.Category{ID: uuid.New(), Name: "Books"}
	catRepo.Put(context.Background(), category)

	err := svc.DeleteCategory(context.Background(), category.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{category.ID}, catRepo.deleted)
}

func TestDeleteCategory_GuardSeesLiveStoreNotSnapshot(t *testing.T) {
	catRepo := newMockCategoryRepo()
	prodRepo := newMockProductRepo()
	svc := services.NewCategoryService(catRepo, prodRepo, &recordingNotifier{})

	category := &models.Category{ID: uuid.New(), Name: "Books"}
	catRepo.Put(context.Background(), category)

	// Snapshot shows zero products.
	rows, err := svc.ListCategoryRows(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, 0, rows[0].ProductCount)

	// Another client adds a product after the snapshot was taken.
	prodRepo.Put(context.Background(), &models.Product{ID: uuid.New(), CategoryID: &category.ID})

	err = svc.DeleteCategory(context.Background(), category.ID.String())
	assert.ErrorIs(t, err, services.ErrCategoryHasProducts)
}

func TestCreateCategory_RejectsDuplicateName(t *testing.T) {
	catRepo := newMockCategoryRepo()
	svc := services.NewCategoryService(catRepo, newMockProductRepo(), &recordingNotifier{})

	_, err := svc.CreateCategory(context.Background(), services.CategoryCreateRequest{Name: "Books"})
	assert.NoError(t, err)

	_, err = svc.CreateCategory(context.Background(), services.CategoryCreateRequest{Name: "Books"})
	assert.ErrorIs(t, err, services.ErrDuplicateCategory)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc := services.NewCategoryService(newMockCategoryRepo(), newMockProductRepo(), &recordingNotifier{})

	err := svc.DeleteCategory(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteCategory_InvalidID(t *testing.T) {
	svc := services.NewCategoryService(newMockCategoryRepo(), newMockProductRepo(), &recordingNotifier{})

	err := svc.DeleteCategory(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}
