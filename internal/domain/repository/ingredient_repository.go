// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"
)

// ErrIngredientNotFound is returned when an ingredient is not found.
var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientRepository defines the standard operations for ingredient persistence.
type IngredientRepository interface {
	// ListIngredients retrieves every ingredient, ordered by name ascending.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// CreateIngredient persists a new ingredient entity.
	CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error

	// UpdateIngredient modifies an existing ingredient. Returns
	// ErrIngredientNotFound when no row matches the id.
	UpdateIngredient(ctx context.Context, ingredient *entity.Ingredient) error

	// DeleteIngredient removes an ingredient by id. Join rows to products are
	// cleaned up by the store; historical order snapshots are untouched.
	// Returns ErrIngredientNotFound when no row matches.
	DeleteIngredient(ctx context.Context, id int64) error
}
