package sqlite

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestStore(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewIngredientRepository().CreateIngredient(ctx, &entity.Ingredient{
			Name:      "Queso",
			ExtraCost: mustDecimal(t, "1.50"),
		})
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, "ingredients"))
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestStore(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewIngredientRepository().CreateIngredient(ctx, &entity.Ingredient{Name: "Queso"}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	assert.EqualValues(t, 0, countRows(t, db, "ingredients"))
}
