package sqlite

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateAndFindOrder(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	ingredientID := int64(99)
	order := &entity.Order{
		AddressStreet:    "Av. Siempreviva 742",
		AddressFloorApt:  "2B",
		AddressReference: "Portón verde",
		DiscountAmount:   mustDecimal(t, "1.00"),
		DiscountReason:   "promo",
		TotalSnapshot:    mustDecimal(t, "22.00"),
		Items: []entity.OrderItem{
			{
				ProductNameSnapshot: "Margherita",
				BasePriceSnapshot:   mustDecimal(t, "10.00"),
				Quantity:            2,
				Note:                "bien cocida",
				RemovedIngredients: []entity.RemovedIngredient{
					{IngredientID: &ingredientID, IngredientNameSnapshot: "Albahaca"},
				},
				ExtraIngredients: []entity.ExtraIngredient{
					{IngredientID: &ingredientID, IngredientNameSnapshot: "Extra queso", ExtraCostSnapshot: mustDecimal(t, "1.50")},
				},
			},
			{
				ProductNameSnapshot: "Empanada",
				BasePriceSnapshot:   mustDecimal(t, "3.00"),
				Quantity:            1,
			},
		},
	}

	require.NoError(t, repo.CreateOrder(ctx, order))
	assert.NotZero(t, order.ID)
	assert.NotZero(t, order.Items[0].ID)
	assert.NotZero(t, order.Items[0].RemovedIngredients[0].ID)

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, "Av. Siempreviva 742", found.AddressStreet)
	assert.Equal(t, "2B", found.AddressFloorApt)
	assert.True(t, found.TotalSnapshot.Equal(mustDecimal(t, "22.00")))
	require.Len(t, found.Items, 2)

	first := found.Items[0]
	assert.Equal(t, "Margherita", first.ProductNameSnapshot)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, "bien cocida", first.Note)
	require.Len(t, first.RemovedIngredients, 1)
	assert.Equal(t, "Albahaca", first.RemovedIngredients[0].IngredientNameSnapshot)
	require.Len(t, first.ExtraIngredients, 1)
	assert.True(t, first.ExtraIngredients[0].ExtraCostSnapshot.Equal(mustDecimal(t, "1.50")))

	// Modifier slices come back empty, never nil.
	second := found.Items[1]
	assert.NotNil(t, second.RemovedIngredients)
	assert.Empty(t, second.RemovedIngredients)
	assert.NotNil(t, second.ExtraIngredients)
	assert.Empty(t, second.ExtraIngredients)
}

func TestOrderRepository_FindOrderByID_NotFound(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)

	_, err := repo.FindOrderByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_ListOrders_NewestFirst(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	oldest := seedOrder(t, db, "Calle 1")
	middle := seedOrder(t, db, "Calle 2")
	newest := seedOrder(t, db, "Calle 3")

	now := time.Now()
	backdateOrder(t, db, oldest.ID, now.Add(-2*time.Hour))
	backdateOrder(t, db, middle.ID, now.Add(-time.Hour))
	backdateOrder(t, db, newest.ID, now)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, newest.ID, orders[0].ID)
	assert.Equal(t, middle.ID, orders[1].ID)
	assert.Equal(t, oldest.ID, orders[2].ID)
}

func TestOrderRepository_ListOrders_GroupsChildrenByParent(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	first := &entity.Order{
		AddressStreet: "Calle 1",
		TotalSnapshot: mustDecimal(t, "13.00"),
		Items: []entity.OrderItem{
			{ProductNameSnapshot: "Margherita", BasePriceSnapshot: mustDecimal(t, "10.00"), Quantity: 1},
			{ProductNameSnapshot: "Empanada", BasePriceSnapshot: mustDecimal(t, "3.00"), Quantity: 1},
		},
	}
	second := &entity.Order{
		AddressStreet: "Calle 2",
		TotalSnapshot: mustDecimal(t, "4.50"),
		Items: []entity.OrderItem{
			{
				ProductNameSnapshot: "Fugazzeta",
				BasePriceSnapshot:   mustDecimal(t, "4.50"),
				Quantity:            1,
				ExtraIngredients: []entity.ExtraIngredient{
					{IngredientNameSnapshot: "Extra queso", ExtraCostSnapshot: mustDecimal(t, "1.50")},
				},
			},
		},
	}
	require.NoError(t, repo.CreateOrder(ctx, first))
	require.NoError(t, repo.CreateOrder(ctx, second))

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	byID := make(map[int64]*entity.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	gotFirst := byID[first.ID]
	require.NotNil(t, gotFirst)
	require.Len(t, gotFirst.Items, 2)
	// Items keep insertion order within their own parent.
	assert.Equal(t, "Margherita", gotFirst.Items[0].ProductNameSnapshot)
	assert.Equal(t, "Empanada", gotFirst.Items[1].ProductNameSnapshot)
	assert.Empty(t, gotFirst.Items[0].ExtraIngredients)

	gotSecond := byID[second.ID]
	require.NotNil(t, gotSecond)
	require.Len(t, gotSecond.Items, 1)
	require.Len(t, gotSecond.Items[0].ExtraIngredients, 1)
	assert.Equal(t, "Extra queso", gotSecond.Items[0].ExtraIngredients[0].IngredientNameSnapshot)
}

func TestOrderRepository_ListOrders_RandomizedGraphsDoNotLeakAcrossParents(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	// Child id sequences overlap across the three tables (items, removed,
	// extras), so grouping by the wrong key column would wire children to
	// foreign parents. The snapshot names encode their parent coordinates
	// and the reconstruction must reproduce them exactly.
	rng := rand.New(rand.NewSource(7))

	const orderCount = 8
	created := make([]*entity.Order, 0, orderCount)
	for o := 0; o < orderCount; o++ {
		items := make([]entity.OrderItem, 0, 3)
		for i := 0; i < rng.Intn(4); i++ {
			removed := make([]entity.RemovedIngredient, 0, 2)
			for r := 0; r < rng.Intn(3); r++ {
				removed = append(removed, entity.RemovedIngredient{
					IngredientNameSnapshot: fmt.Sprintf("o%d-i%d-r%d", o, i, r),
				})
			}

			extras := make([]entity.ExtraIngredient, 0, 2)
			for e := 0; e < rng.Intn(3); e++ {
				extras = append(extras, entity.ExtraIngredient{
					IngredientNameSnapshot: fmt.Sprintf("o%d-i%d-e%d", o, i, e),
					ExtraCostSnapshot:      mustDecimal(t, "0.50"),
				})
			}

			items = append(items, entity.OrderItem{
				ProductNameSnapshot: fmt.Sprintf("o%d-i%d", o, i),
				BasePriceSnapshot:   mustDecimal(t, "10.00"),
				Quantity:            1 + rng.Intn(3),
				RemovedIngredients:  removed,
				ExtraIngredients:    extras,
			})
		}

		order := &entity.Order{
			AddressStreet: fmt.Sprintf("Calle %d", o),
			TotalSnapshot: mustDecimal(t, "10.00"),
			Items:         items,
		}
		require.NoError(t, repo.CreateOrder(ctx, order))
		created = append(created, order)
	}

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, orderCount)

	byID := make(map[int64]*entity.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	for o, want := range created {
		got := byID[want.ID]
		require.NotNil(t, got, "order %d missing from listing", o)
		require.Len(t, got.Items, len(want.Items), "order %d item count", o)

		for i, wantItem := range want.Items {
			gotItem := got.Items[i]
			assert.Equal(t, fmt.Sprintf("o%d-i%d", o, i), gotItem.ProductNameSnapshot)
			assert.Equal(t, wantItem.Quantity, gotItem.Quantity)

			require.Len(t, gotItem.RemovedIngredients, len(wantItem.RemovedIngredients), "order %d item %d removed count", o, i)
			for r, gotRemoved := range gotItem.RemovedIngredients {
				assert.Equal(t, fmt.Sprintf("o%d-i%d-r%d", o, i, r), gotRemoved.IngredientNameSnapshot)
			}

			require.Len(t, gotItem.ExtraIngredients, len(wantItem.ExtraIngredients), "order %d item %d extra count", o, i)
			for e, gotExtra := range gotItem.ExtraIngredients {
				assert.Equal(t, fmt.Sprintf("o%d-i%d-e%d", o, i, e), gotExtra.IngredientNameSnapshot)
			}
		}
	}
}

func TestOrderRepository_DeleteOrdersBefore_StrictBoundary(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	cutoff := time.Now().Add(-30 * 24 * time.Hour).Truncate(time.Second)

	expired := seedOrder(t, db, "Calle vieja")
	exact := seedOrder(t, db, "Calle límite")
	fresh := seedOrder(t, db, "Calle nueva")

	backdateOrder(t, db, expired.ID, cutoff.Add(-time.Second))
	backdateOrder(t, db, exact.ID, cutoff)

	purged, err := repo.DeleteOrdersBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)

	orders, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// The order aged exactly the window survives; only strictly older goes.
	ids := []int64{orders[0].ID, orders[1].ID}
	assert.Contains(t, ids, exact.ID)
	assert.Contains(t, ids, fresh.ID)
	assert.NotContains(t, ids, expired.ID)

	// Children of the purged order are gone too.
	assert.EqualValues(t, 2, countRows(t, db, "order_items"))
}

func TestOrderRepository_CreateOrder_RollsBackWholeGraph(t *testing.T) {
	db := newTestStore(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	order := &entity.Order{
		AddressStreet: "Calle 1",
		TotalSnapshot: mustDecimal(t, "10.00"),
		Items: []entity.OrderItem{
			{ProductNameSnapshot: "Margherita", BasePriceSnapshot: mustDecimal(t, "10.00"), Quantity: 1},
		},
	}

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewOrderRepository().CreateOrder(ctx, order); err != nil {
			return err
		}
		// A failure after the rows went in must erase all of them.
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	assert.EqualValues(t, 0, countRows(t, db, "orders"))
	assert.EqualValues(t, 0, countRows(t, db, "order_items"))
}

func TestOrderRepository_UpdateDeliveredStatus(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "Calle 1")

	require.NoError(t, repo.UpdateDeliveredStatus(ctx, order.ID, true))

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, found.StatusDelivered)

	// Setting the same value again is not an error.
	require.NoError(t, repo.UpdateDeliveredStatus(ctx, order.ID, true))

	err = repo.UpdateDeliveredStatus(ctx, 404, true)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_DeleteOrder_CascadesToChildren(t *testing.T) {
	db := newTestStore(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := &entity.Order{
		AddressStreet: "Calle 1",
		TotalSnapshot: mustDecimal(t, "11.50"),
		Items: []entity.OrderItem{
			{
				ProductNameSnapshot: "Margherita",
				BasePriceSnapshot:   mustDecimal(t, "10.00"),
				Quantity:            1,
				RemovedIngredients: []entity.RemovedIngredient{
					{IngredientNameSnapshot: "Albahaca"},
				},
				ExtraIngredients: []entity.ExtraIngredient{
					{IngredientNameSnapshot: "Extra queso", ExtraCostSnapshot: mustDecimal(t, "1.50")},
				},
			},
		},
	}
	require.NoError(t, repo.CreateOrder(ctx, order))

	require.NoError(t, repo.DeleteOrder(ctx, order.ID))

	assert.EqualValues(t, 0, countRows(t, db, "orders"))
	assert.EqualValues(t, 0, countRows(t, db, "order_items"))
	assert.EqualValues(t, 0, countRows(t, db, "order_item_removed_ingredients"))
	assert.EqualValues(t, 0, countRows(t, db, "order_item_extra_ingredients"))

	err := repo.DeleteOrder(ctx, order.ID)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_SnapshotsSurviveCatalogChanges(t *testing.T) {
	db := newTestStore(t)
	orderRepo := NewOrderRepository(db)
	productRepo := NewProductRepository(db)
	ingredientRepo := NewIngredientRepository(db)
	ctx := context.Background()

	cheese := seedIngredient(t, db, "Extra queso", "1.50")
	pizza := seedProduct(t, db, "Margherita", "10.00", cheese.ID)

	order := &entity.Order{
		AddressStreet: "Calle 1",
		TotalSnapshot: mustDecimal(t, "11.50"),
		Items: []entity.OrderItem{
			{
				ProductID:           &pizza.ID,
				ProductNameSnapshot: pizza.Name,
				BasePriceSnapshot:   pizza.Price,
				Quantity:            1,
				ExtraIngredients: []entity.ExtraIngredient{
					{IngredientID: &cheese.ID, IngredientNameSnapshot: cheese.Name, ExtraCostSnapshot: cheese.ExtraCost},
				},
			},
		},
	}
	require.NoError(t, orderRepo.CreateOrder(ctx, order))

	// Reprice the product, then delete both catalog rows entirely.
	pizza.Price = mustDecimal(t, "99.00")
	require.NoError(t, productRepo.UpdateProduct(ctx, pizza, []int64{cheese.ID}))
	require.NoError(t, productRepo.DeleteProduct(ctx, pizza.ID))
	require.NoError(t, ingredientRepo.DeleteIngredient(ctx, cheese.ID))

	found, err := orderRepo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)

	item := found.Items[0]
	assert.Equal(t, "Margherita", item.ProductNameSnapshot)
	assert.True(t, item.BasePriceSnapshot.Equal(mustDecimal(t, "10.00")))
	assert.True(t, found.TotalSnapshot.Equal(mustDecimal(t, "11.50")))
	// The weak references are nulled, the snapshots stay.
	assert.Nil(t, item.ProductID)
	require.Len(t, item.ExtraIngredients, 1)
	assert.Nil(t, item.ExtraIngredients[0].IngredientID)
	assert.Equal(t, "Extra queso", item.ExtraIngredients[0].IngredientNameSnapshot)
	assert.True(t, item.ExtraIngredients[0].ExtraCostSnapshot.Equal(mustDecimal(t, "1.50")))
}
