package services_test

import (
	"context"
	"mime/multipart"
	"testing"

	"admin-service/aggregate"
	"admin-service/models"
	"admin-service/repository"
	"admin-service/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type mockTagRepo struct {
	tags map[uuid.UUID]*models.Tag
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{tags: make(map[uuid.UUID]*models.Tag)}
}

func (m *mockTagRepo) FindAll(_ context.Context) ([]models.Tag, error) {
	var out []models.Tag
	for _, t := range m.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTagRepo) Put(_ context.Context, tag *models.Tag) error {
	m.tags[tag.ID] = tag
	return nil
}

func (m *mockTagRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.tags, id)
	return nil
}

func newProductService(prodRepo *mockProductRepo, catRepo *mockCategoryRepo, tagRepo *mockTagRepo, notifier *recordingNotifier) *services.ProductService {
	return services.NewProductService(prodRepo, catRepo, tagRepo, nil, notifier)
}

func TestListProductRows_ResolvesNames(t *testing.T) {
	prodRepo := newMockProductRepo()
	catRepo := newMockCategoryRepo()
	tagRepo := newMockTagRepo()

	furniture := &models.Category{ID: uuid.New(), Name: "Furniture"}
	assert.NoError(t, catRepo.Put(context.Background(), furniture))

	sale := &models.Tag{ID: uuid.New(), Name: "sale"}
	assert.NoError(t, tagRepo.Put(context.Background(), sale))
	dangling := uuid.New()

	desk := &models.Product{
		ID:         uuid.New(),
		Name:       "Walnut Desk",
		CategoryID: &furniture.ID,
		TagIDs:     []uuid.UUID{sale.ID, dangling},
	}
	lamp := &models.Product{ID: uuid.New(), Name: "Arc Lamp"}
	assert.NoError(t, prodRepo.Put(context.Background(), desk))
	assert.NoError(t, prodRepo.Put(context.Background(), lamp))

	svc := newProductService(prodRepo, catRepo, tagRepo, &recordingNotifier{})

	rows, err := svc.ListProductRows(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	byName := make(map[string]aggregate.ProductRow)
	for _, row := range rows {
		byName[row.Product.Name] = row
	}

	assert.Equal(t, "Furniture", byName["Walnut Desk"].CategoryName)
	// Unresolvable tag ids are dropped, not rendered as raw ids.
	assert.Equal(t, []string{"sale"}, byName["Walnut Desk"].TagNames)
	assert.Equal(t, aggregate.UncategorizedLabel, byName["Arc Lamp"].CategoryName)
}

func TestListProductRows_SearchMatchesCategoryName(t *testing.T) {
	prodRepo := newMockProductRepo()
	catRepo := newMockCategoryRepo()
	tagRepo := newMockTagRepo()

	lighting := &models.Category{ID: uuid.New(), Name: "Lighting"}
	assert.NoError(t, catRepo.Put(context.Background(), lighting))

	assert.NoError(t, prodRepo.Put(context.Background(), &models.Product{
		ID: uuid.New(), Name: "Arc Lamp", CategoryID: &lighting.ID,
	}))
	assert.NoError(t, prodRepo.Put(context.Background(), &models.Product{
		ID: uuid.New(), Name: "Walnut Desk",
	}))

	svc := newProductService(prodRepo, catRepo, tagRepo, &recordingNotifier{})

	rows, err := svc.ListProductRows(context.Background(), "LIGHT")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Arc Lamp", rows[0].Product.Name)
}

func TestCreateProduct_EmitsNotification(t *testing.T) {
	prodRepo := newMockProductRepo()
	notifier := &recordingNotifier{}
	svc := newProductService(prodRepo, newMockCategoryRepo(), newMockTagRepo(), notifier)

	product, err := svc.CreateProduct(context.Background(), services.ProductCreateRequest{
		Name:  "Walnut Desk",
		Price: "240.00",
	}, nil)
	assert.NoError(t, err)
	assert.NotNil(t, product)

	stored, err := prodRepo.FindByID(context.Background(), product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Walnut Desk", stored.Name)

	assert.Len(t, notifier.events, 1)
	assert.Equal(t, "product", notifier.events[0].Entity)
	assert.Equal(t, "create", notifier.events[0].Action)
	assert.True(t, notifier.events[0].Success)
}

func TestCreateProduct_AbortsWhenUploadFails(t *testing.T) {
	prodRepo := newMockProductRepo()
	notifier := &recordingNotifier{}
	images := services.NewImageStore(nil, nil, "bucket", "products/", "", "")
	svc := services.NewProductService(prodRepo, newMockCategoryRepo(), newMockTagRepo(), images, notifier)

	// A bare FileHeader has no backing content, so opening it fails
	// before anything reaches the blob store.
	broken := []*multipart.FileHeader{{Filename: "broken.png"}}
	product, err := svc.CreateProduct(context.Background(), services.ProductCreateRequest{
		Name:  "Arc Lamp",
		Price: "95.00",
	}, broken)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Empty(t, prodRepo.products)
	assert.Empty(t, notifier.events)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := newProductService(newMockProductRepo(), newMockCategoryRepo(), newMockTagRepo(), &recordingNotifier{})

	name := "Renamed"
	err := svc.UpdateProduct(context.Background(), uuid.NewString(), services.ProductUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteProduct_InvalidID(t *testing.T) {
	svc := newProductService(newMockProductRepo(), newMockCategoryRepo(), newMockTagRepo(), &recordingNotifier{})

	err := svc.DeleteProduct(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, services.ErrInvalidID)
}
