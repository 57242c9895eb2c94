package aggregate

import (
	"admin-service/models"

	"github.com/google/uuid"
)

// UncategorizedLabel is shown for products whose category is unset or
// no longer resolves to an existing category document.
const UncategorizedLabel = "Uncategorized"

// CategoryRow is one line of the categories table.
type CategoryRow struct {
	Category     models.Category `json:"category"`
	ProductCount int             `json:"product_count"`
}

// CategoryRows produces one row per category with the number of
// products referencing it. Products without a category are excluded
// from every count; they only surface as "Uncategorized" in the
// product table. A category is deletable exactly when its count is
// zero, but deletion must re-check against the live store because this
// count comes from a snapshot.
func CategoryRows(categories []models.Category, products []models.Product) []CategoryRow {
	counts := make(map[uuid.UUID]int, len(categories))
	for _, p := range products {
		if p.CategoryID == nil {
			continue
		}
		counts[*p.CategoryID]++
	}

	rows := make([]CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryRow{Category: c, ProductCount: counts[c.ID]})
	}
	return rows
}

// ProductRow is one line of the products table: the product document
// with its category and tag references resolved to display names.
type ProductRow struct {
	Product      models.Product `json:"product"`
	CategoryName string         `json:"category_name"`
	TagNames     []string       `json:"tag_names,omitempty"`
}

// ProductRows attaches display names to every product. The category
// lookup is total: a missing or dangling category id yields the
// UncategorizedLabel. Tag ids that no longer resolve are dropped.
func ProductRows(products []models.Product, categories []models.Category, tags []models.Tag) []ProductRow {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	tagNames := make(map[uuid.UUID]string, len(tags))
	for _, t := range tags {
		tagNames[t.ID] = t.Name
	}

	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		row := ProductRow{Product: p, CategoryName: UncategorizedLabel}
		if p.CategoryID != nil {
			if name, ok := names[*p.CategoryID]; ok {
				row.CategoryName = name
			}
		}
		for _, id := range p.TagIDs {
			if name, ok := tagNames[id]; ok {
				row.TagNames = append(row.TagNames, name)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
