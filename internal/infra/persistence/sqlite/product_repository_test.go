package sqlite

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateAndList(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	cheese := seedIngredient(t, db, "Queso", "1.50")
	olives := seedIngredient(t, db, "Aceitunas", "0.75")

	seedProduct(t, db, "Margherita", "10.00", cheese.ID, olives.ID)
	seedProduct(t, db, "Empanada", "3.00")

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Alphabetical by name, ingredients alphabetical within each product.
	assert.Equal(t, "Empanada", products[0].Name)
	assert.NotNil(t, products[0].Ingredients)
	assert.Empty(t, products[0].Ingredients)

	assert.Equal(t, "Margherita", products[1].Name)
	require.Len(t, products[1].Ingredients, 2)
	assert.Equal(t, "Aceitunas", products[1].Ingredients[0].Name)
	assert.Equal(t, "Queso", products[1].Ingredients[1].Name)
}

func TestProductRepository_ListProducts_Empty(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_Update_ReplacesAssociationSet(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	cheese := seedIngredient(t, db, "Queso", "1.50")
	olives := seedIngredient(t, db, "Aceitunas", "0.75")
	ham := seedIngredient(t, db, "Jamón", "2.00")

	product := seedProduct(t, db, "Margherita", "10.00", cheese.ID, olives.ID)

	product.Name = "Napolitana"
	product.Price = mustDecimal(t, "11.00")
	require.NoError(t, repo.UpdateProduct(ctx, product, []int64{ham.ID}))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)

	assert.Equal(t, "Napolitana", products[0].Name)
	assert.True(t, products[0].Price.Equal(mustDecimal(t, "11.00")))
	// The old set is gone wholesale, not merged.
	require.Len(t, products[0].Ingredients, 1)
	assert.Equal(t, "Jamón", products[0].Ingredients[0].Name)
}

func TestProductRepository_Update_CanClearAssociations(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	cheese := seedIngredient(t, db, "Queso", "1.50")
	product := seedProduct(t, db, "Margherita", "10.00", cheese.ID)

	require.NoError(t, repo.UpdateProduct(ctx, product, nil))

	assert.EqualValues(t, 0, countRows(t, db, "product_ingredients"))
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)

	err := repo.UpdateProduct(context.Background(), &entity.Product{ID: 404, Name: "Margherita"}, nil)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Delete(t *testing.T) {
	db := newTestStore(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	cheese := seedIngredient(t, db, "Queso", "1.50")
	product := seedProduct(t, db, "Margherita", "10.00", cheese.ID)

	require.NoError(t, repo.DeleteProduct(ctx, product.ID))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	// Join rows cascade; the ingredient itself stays.
	assert.EqualValues(t, 0, countRows(t, db, "product_ingredients"))
	assert.EqualValues(t, 1, countRows(t, db, "ingredients"))

	err = repo.DeleteProduct(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}
