package aggregate

import (
	"testing"

	"admin-service/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategoryRows_Counts(t *testing.T) {
	books := models.Category{ID: uuid.New(), Name: "Books"}
	games := models.Category{ID: uuid.New(), Name: "Games"}

	products := []models.Product{
		{ID: uuid.New(), CategoryID: &books.ID},
		{ID: uuid.New(), CategoryID: &books.ID},
		{ID: uuid.New()}, // uncategorized, counted nowhere
	}

	rows := CategoryRows([]models.Category{books, games}, products)

	assert.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].ProductCount)
	assert.Equal(t, 0, rows[1].ProductCount)
}

func TestCategoryRows_EmptyProducts(t *testing.T) {
	c := models.Category{ID: uuid.New(), Name: "Books"}

	rows := CategoryRows([]models.Category{c}, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].ProductCount)
}

func TestProductRows_ResolvesCategoryName(t *testing.T) {
	cat := models.Category{ID: uuid.New(), Name: "Books"}
	p := models.Product{ID: uuid.New(), Name: "Dune", CategoryID: &cat.ID}

	rows := ProductRows([]models.Product{p}, []models.Category{cat}, nil)

	assert.Equal(t, "Books", rows[0].CategoryName)
}

func TestProductRows_UncategorizedFallback(t *testing.T) {
	missing := uuid.New()
	products := []models.Product{
		{ID: uuid.New(), Name: "no category"},
		{ID: uuid.New(), Name: "dangling category", CategoryID: &missing},
	}

	rows := ProductRows(products, nil, nil)

	assert.Equal(t, UncategorizedLabel, rows[0].CategoryName)
	assert.Equal(t, UncategorizedLabel, rows[1].CategoryName)
}

func TestProductRows_TagResolution(t *testing.T) {
	sale := models.Tag{ID: uuid.New(), Name: "sale"}
	gone := uuid.New()
	p := models.Product{ID: uuid.New(), TagIDs: []uuid.UUID{sale.ID, gone}}

	rows := ProductRows([]models.Product{p}, nil, []models.Tag{sale})

	assert.Equal(t, []string{"sale"}, rows[0].TagNames)
}
