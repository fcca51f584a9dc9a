package products

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateID is returned by Create when the id is already taken.
	// Clients assign product ids locally, so a retried attach can race an
	// earlier one onto the same row.
	ErrDuplicateID = errors.New("product id already exists")
)

// Repository is the row-shaped persistence surface for products: list ordered
// by position, insert, update by id, delete by id.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) error
	// UpdateFields patches the named fields only; position and id are never
	// touched through this path.
	UpdateFields(ctx context.Context, id string, changes map[Field]string) error
	Delete(ctx context.Context, id string) error
}
