// Package usecase defines the application's use case interfaces and input DTOs.
package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// IngredientInput carries the mutable fields of an ingredient.
type IngredientInput struct {
	Name      string          `json:"name"`
	ExtraCost decimal.Decimal `json:"extra_cost"`
}

// ProductInput carries the mutable fields of a product together with the full
// set of base-ingredient ids. The set always replaces the previous one.
type ProductInput struct {
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	IngredientIDs []int64         `json:"ingredient_ids"`
}

// CatalogUsecase defines the interface for catalog management use cases.
// Every mutation invalidates the catalog and order-entry views.
type CatalogUsecase interface {
	// ListIngredients retrieves all ingredients ordered by name.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// CreateIngredient validates and persists a new ingredient.
	CreateIngredient(ctx context.Context, input IngredientInput) (*entity.Ingredient, error)

	// UpdateIngredient validates and applies changes to an existing ingredient.
	UpdateIngredient(ctx context.Context, id int64, input IngredientInput) error

	// DeleteIngredient removes an ingredient from the catalog. Historical
	// order snapshots keep the ingredient's name and cost.
	DeleteIngredient(ctx context.Context, id int64) error

	// ListProducts retrieves all products with their base ingredients,
	// both ordered by name.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// CreateProduct validates and persists a new product with its ingredient set.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct validates and applies changes to an existing product,
	// replacing its ingredient association set wholesale.
	UpdateProduct(ctx context.Context, id int64, input ProductInput) error

	// DeleteProduct removes a product from the catalog. Existing orders are
	// unaffected.
	DeleteProduct(ctx context.Context, id int64) error
}
