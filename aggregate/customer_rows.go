// Package aggregate derives the denormalized rows the dashboard tables
// render from in-memory snapshots of the raw collections. Every function
// here is pure: it reads snapshots taken at fetch time and never touches
// the store.
package aggregate

import (
	"sort"

	"admin-service/models"

	"github.com/shopspring/decimal"
)

// CustomerRow is one line of the customers table: the customer document
// plus its spend summary derived from the order snapshot.
type CustomerRow struct {
	Customer    models.Customer `json:"customer"`
	OrderCount  int             `json:"order_count"`
	TotalAmount string          `json:"total_amount"`
}

type spend struct {
	total decimal.Decimal
	count int
}

// CustomerRows produces one row per customer with the order count and
// total spend of orders sharing the customer's user id. Totals are
// summed exactly and formatted with two fraction digits, rounding half
// away from zero (15.005 -> "15.01"). An order whose total_amount does
// not parse still counts as an order; its amount contributes zero.
// Orders whose user id matches no customer contribute to no row.
// Rows come back ordered by customer creation time, newest first.
func CustomerRows(customers []models.Customer, orders []models.Order) []CustomerRow {
	byUser := make(map[string]spend, len(customers))
	for _, o := range orders {
		acc := byUser[o.UserID]
		acc.total = acc.total.Add(parseAmount(o.TotalAmount))
		acc.count++
		byUser[o.UserID] = acc
	}

	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		acc := byUser[c.UserID] // zero value covers customers with no orders
		rows = append(rows, CustomerRow{
			Customer:    c,
			OrderCount:  acc.count,
			TotalAmount: acc.total.StringFixed(2),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Customer.CreatedAt.After(rows[j].Customer.CreatedAt)
	})
	return rows
}

// parseAmount reads a decimal-as-text monetary field. Missing or
// malformed values degrade to zero rather than failing the row.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
