package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidID means the supplied document id is not a UUID.
	ErrInvalidID = errors.New("invalid id")

	// ErrCategoryHasProducts refuses a category delete while products
	// still reference the category.
	ErrCategoryHasProducts = errors.New("cannot delete category with associated products")

	// ErrDuplicateCategory refuses a create that would reuse a name.
	ErrDuplicateCategory = errors.New("category with that name already exists")
)

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
