package sqlite

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens a private in-memory store with the normal migration and
// foreign-key setup applied.
func newTestStore(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open("file::memory:", logger.Discard)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, extraCost string) *entity.Ingredient {
	t.Helper()

	ingredient := &entity.Ingredient{Name: name, ExtraCost: mustDecimal(t, extraCost)}
	require.NoError(t, NewIngredientRepository(db).CreateIngredient(context.Background(), ingredient))
	return ingredient
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price string, ingredientIDs ...int64) *entity.Product {
	t.Helper()

	product := &entity.Product{Name: name, Price: mustDecimal(t, price)}
	require.NoError(t, NewProductRepository(db).CreateProduct(context.Background(), product, ingredientIDs))
	return product
}

// seedOrder persists a minimal one-item order and returns it with ids filled in.
func seedOrder(t *testing.T, db *gorm.DB, street string) *entity.Order {
	t.Helper()

	order := &entity.Order{
		AddressStreet: street,
		TotalSnapshot: mustDecimal(t, "10.00"),
		Items: []entity.OrderItem{
			{
				ProductNameSnapshot: "Margherita",
				BasePriceSnapshot:   mustDecimal(t, "10.00"),
				Quantity:            1,
			},
		},
	}
	require.NoError(t, NewOrderRepository(db).CreateOrder(context.Background(), order))
	return order
}

// backdateOrder rewrites an order's creation timestamp, the only way a test
// can age rows into the retention window.
func backdateOrder(t *testing.T, db *gorm.DB, orderID int64, createdAt time.Time) {
	t.Helper()

	result := db.Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("created_at", createdAt)
	require.NoError(t, result.Error)
	require.EqualValues(t, 1, result.RowsAffected)
}

func countRows(t *testing.T, db *gorm.DB, tableName string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Table(tableName).Count(&count).Error)
	return count
}
