package aggregate

import "strings"

// The dashboard search boxes filter the already-aggregated rows in
// memory, re-running on every keystroke. The filters below are
// case-insensitive substring matches over each screen's searchable
// fields. An empty query is the identity: full list, original order.

// FilterCustomerRows matches on user id and email.
func FilterCustomerRows(rows []CustomerRow, query string) []CustomerRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]CustomerRow, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.Customer.UserID, q) || containsFold(r.Customer.Email, q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterCategoryRows matches on category name.
func FilterCategoryRows(rows []CategoryRow, query string) []CategoryRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]CategoryRow, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.Category.Name, q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterProductRows matches on product name, description, or the
// resolved category name.
func FilterProductRows(rows []ProductRow, query string) []ProductRow {
	if query == "" {
		return rows
	}
	q := strings.ToLower(query)
	out := make([]ProductRow, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.Product.Name, q) ||
			containsFold(r.Product.Description, q) ||
			containsFold(r.CategoryName, q) {
			out = append(out, r)
		}
	}
	return out
}

// containsFold expects needle already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
