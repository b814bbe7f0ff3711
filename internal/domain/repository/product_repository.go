package repository

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence,
// including the product↔ingredient association set.
type ProductRepository interface {
	// ListProducts retrieves every product ordered by name ascending, with its
	// base ingredients attached (ordered by name ascending). The association
	// rows are batch-fetched, never one query per product.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct persists a new product and its ingredient associations.
	CreateProduct(ctx context.Context, product *entity.Product, ingredientIDs []int64) error

	// UpdateProduct modifies a product and replaces its whole association set
	// (delete-all-then-reinsert, not diffed). Returns ErrProductNotFound when
	// no row matches the id.
	UpdateProduct(ctx context.Context, product *entity.Product, ingredientIDs []int64) error

	// DeleteProduct removes a product by id. Existing orders keep their
	// snapshots. Returns ErrProductNotFound when no row matches.
	DeleteProduct(ctx context.Context, id int64) error
}
