package impl

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	mockRepo "comanda/internal/mocks/repository"
	mockSvc "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	factory   *mockRepo.MockRepositoryFactory
	viewCache *mockSvc.MockViewCache
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	viewCache := mockSvc.NewMockViewCache(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		ViewCache: viewCache,
		Config:    newTestConfig(30),
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		factory:   factory,
		viewCache: viewCache,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// the mocked order repository, the way a committed transaction would.
func (fx orderServiceFixtures) expectTransaction() {
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestOrderService_CreateOrder_ComputesTotalServerSide(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	cart := usecase.CartSubmission{
		Address: usecase.CartAddress{Street: "Av. Siempreviva 742"},
		Items: []usecase.CartItem{
			{
				ProductID:   7,
				ProductName: "Margherita",
				BasePrice:   mustDecimal(t, "10.00"),
				Quantity:    2,
				ExtraIngredients: []usecase.CartExtraIngredient{
					{IngredientID: 3, Name: "Extra queso", ExtraCost: mustDecimal(t, "1.50")},
				},
			},
		},
	}

	var saved *entity.Order
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			saved = order
			order.ID = 42
			return nil
		})
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	id, err := fx.service.CreateOrder(ctx, cart)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NotNil(t, saved)
	// (10.00 + 1.50) × 2, nothing taken from the client.
	assert.True(t, saved.TotalSnapshot.Equal(mustDecimal(t, "23.00")),
		"total %s", saved.TotalSnapshot)
	require.Len(t, saved.Items, 1)
	assert.Equal(t, "Margherita", saved.Items[0].ProductNameSnapshot)
	assert.True(t, saved.Items[0].BasePriceSnapshot.Equal(mustDecimal(t, "10.00")))
	require.Len(t, saved.Items[0].ExtraIngredients, 1)
	assert.Equal(t, "Extra queso", saved.Items[0].ExtraIngredients[0].IngredientNameSnapshot)
	require.NotNil(t, saved.Items[0].ProductID)
	assert.Equal(t, int64(7), *saved.Items[0].ProductID)
}

func TestOrderService_CreateOrder_AppliesDiscount(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	cart := usecase.CartSubmission{
		Address:        usecase.CartAddress{Street: "Calle 1"},
		DiscountAmount: mustDecimal(t, "5.00"),
		DiscountReason: "  cliente frecuente  ",
		Items: []usecase.CartItem{
			{ProductID: 1, ProductName: "Empanada", BasePrice: mustDecimal(t, "3.00"), Quantity: 4},
		},
	}

	var saved *entity.Order
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			saved = order
			order.ID = 1
			return nil
		})
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	_, err := fx.service.CreateOrder(ctx, cart)
	require.NoError(t, err)

	assert.True(t, saved.TotalSnapshot.Equal(mustDecimal(t, "7.00")))
	assert.Equal(t, "cliente frecuente", saved.DiscountReason)
}

func TestOrderService_CreateOrder_DiscountNeverPushesTotalNegative(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	cart := usecase.CartSubmission{
		Address:        usecase.CartAddress{Street: "Calle 1"},
		DiscountAmount: mustDecimal(t, "100.00"),
		Items: []usecase.CartItem{
			{ProductID: 1, ProductName: "Empanada", BasePrice: mustDecimal(t, "3.00"), Quantity: 1},
		},
	}

	var saved *entity.Order
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			saved = order
			return nil
		})
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	_, err := fx.service.CreateOrder(ctx, cart)
	require.NoError(t, err)

	assert.True(t, saved.TotalSnapshot.IsZero())
	// The discount itself is recorded as submitted.
	assert.True(t, saved.DiscountAmount.Equal(mustDecimal(t, "100.00")))
}

func TestOrderService_CreateOrder_ClampsInvalidQuantityAndDiscount(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	cart := usecase.CartSubmission{
		Address:        usecase.CartAddress{Street: "Calle 1"},
		DiscountAmount: mustDecimal(t, "-4.00"),
		Items: []usecase.CartItem{
			{ProductID: 1, ProductName: "Empanada", BasePrice: mustDecimal(t, "3.00"), Quantity: 0},
		},
	}

	var saved *entity.Order
	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, order *entity.Order) error {
			saved = order
			return nil
		})
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	_, err := fx.service.CreateOrder(ctx, cart)
	require.NoError(t, err)

	require.Len(t, saved.Items, 1)
	assert.Equal(t, 1, saved.Items[0].Quantity)
	assert.True(t, saved.DiscountAmount.IsZero())
	assert.True(t, saved.TotalSnapshot.Equal(mustDecimal(t, "3.00")))
}

func TestOrderService_ListOrders_PurgesBeforeListing(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	retained := []*entity.Order{
		{ID: 2, AddressStreet: "Calle 2"},
		{ID: 1, AddressStreet: "Calle 1"},
	}

	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		DeleteOrdersBefore(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), cutoff, time.Minute)
			return 3, nil
		})
	fx.orderRepo.EXPECT().ListOrders(ctx).Return(retained, nil)

	orders, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, retained, orders)
}

func TestOrderService_ListOrders_PurgeFailureDoesNotAbortRead(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	retained := []*entity.Order{{ID: 1, AddressStreet: "Calle 1"}}

	fx.expectTransaction()
	fx.orderRepo.EXPECT().
		DeleteOrdersBefore(ctx, mock.Anything).
		Return(int64(0), assert.AnError)
	fx.orderRepo.EXPECT().ListOrders(ctx).Return(retained, nil)

	orders, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, retained, orders)
}

func TestOrderService_GetOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: 9, AddressStreet: "Calle 9"}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(9)).Return(order, nil)

	got, err := fx.service.GetOrder(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_ToggleDelivered(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().UpdateDeliveredStatus(ctx, int64(5), true).Return(nil)
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	err := fx.service.ToggleDelivered(ctx, 5, true)
	assert.NoError(t, err)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().DeleteOrder(ctx, int64(5)).Return(nil)
	fx.viewCache.EXPECT().Invalidate(ctx, service.ViewOrders).Return()

	err := fx.service.DeleteOrder(ctx, 5)
	assert.NoError(t, err)
}
