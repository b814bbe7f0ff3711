package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"comanda/config"
	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	viewCache service.ViewCache
	retention time.Duration
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	ViewCache service.ViewCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		viewCache: params.ViewCache,
		retention: params.Config.Retention.Window(),
		logger:    params.Logger,
	}
}

// log returns the request-scoped logger when the call came through the HTTP
// middleware, falling back to the service logger otherwise.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder validates the cart, computes the authoritative total and writes
// the order graph atomically. The client may display its own total; it is
// never trusted here; the charge is always re-derived from the submitted
// line items.
func (s *orderService) CreateOrder(ctx context.Context, cart usecase.CartSubmission) (int64, error) {
	street := strings.TrimSpace(cart.Address.Street)
	if street == "" {
		return 0, domainerrors.ErrAddressRequired
	}
	if len(cart.Items) == 0 {
		return 0, domainerrors.ErrEmptyCart
	}

	discount := cart.DiscountAmount
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	order := buildOrderSnapshot(cart, street, discount)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		s.log(ctx).ErrorContext(ctx, "create order failed", slog.Any("error", err))

		return 0, domainerrors.ErrOrderSaveFailed
	}

	s.viewCache.Invalidate(ctx, service.ViewOrders)

	return order.ID, nil
}

// buildOrderSnapshot copies the cart into an order entity, snapshotting
// product and ingredient data, and computes the total:
// max(0, Σ (base + Σ extras) × qty − discount).
func buildOrderSnapshot(cart usecase.CartSubmission, street string, discount decimal.Decimal) *entity.Order {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	subtotal := decimal.Zero

	for _, cartItem := range cart.Items {
		quantity := cartItem.Quantity
		if quantity < 1 {
			quantity = 1
		}

		removed := make([]entity.RemovedIngredient, 0, len(cartItem.RemovedIngredients))
		for _, cartRemoved := range cartItem.RemovedIngredients {
			ingredientID := cartRemoved.IngredientID
			removed = append(removed, entity.RemovedIngredient{
				IngredientID:           &ingredientID,
				IngredientNameSnapshot: cartRemoved.Name,
			})
		}

		extrasSum := decimal.Zero
		extras := make([]entity.ExtraIngredient, 0, len(cartItem.ExtraIngredients))
		for _, cartExtra := range cartItem.ExtraIngredients {
			ingredientID := cartExtra.IngredientID
			extras = append(extras, entity.ExtraIngredient{
				IngredientID:           &ingredientID,
				IngredientNameSnapshot: cartExtra.Name,
				ExtraCostSnapshot:      cartExtra.ExtraCost,
			})
			extrasSum = extrasSum.Add(cartExtra.ExtraCost)
		}

		subtotal = subtotal.Add(
			cartItem.BasePrice.Add(extrasSum).Mul(decimal.NewFromInt(int64(quantity))),
		)

		productID := cartItem.ProductID
		items = append(items, entity.OrderItem{
			ProductID:           &productID,
			ProductNameSnapshot: cartItem.ProductName,
			BasePriceSnapshot:   cartItem.BasePrice,
			Quantity:            quantity,
			Note:                strings.TrimSpace(cartItem.Note),
			RemovedIngredients:  removed,
			ExtraIngredients:    extras,
		})
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &entity.Order{
		AddressStreet:    street,
		AddressFloorApt:  strings.TrimSpace(cart.Address.FloorApt),
		AddressReference: strings.TrimSpace(cart.Address.Reference),
		DiscountAmount:   discount,
		DiscountReason:   strings.TrimSpace(cart.DiscountReason),
		TotalSnapshot:    total,
		Items:            items,
	}
}

// ListOrders purges orders older than the retention window and returns the
// remaining ones, newest first. Purge and select share one transaction so a
// reader never races the sweep; a purge failure is logged and the listing
// proceeds over whatever rows are there.
func (s *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		cutoff := time.Now().Add(-s.retention)
		if purged, err := orderRepo.DeleteOrdersBefore(ctx, cutoff); err != nil {
			s.log(ctx).WarnContext(ctx, "retention purge failed", slog.Any("error", err))
		} else if purged > 0 {
			s.log(ctx).InfoContext(ctx, "retention purge removed orders",
				slog.Int64("count", purged),
				slog.Time("cutoff", cutoff),
			)
		}

		var err error
		orders, err = orderRepo.ListOrders(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves a single order aggregate by id.
func (s *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// ToggleDelivered sets the delivered flag of an order.
func (s *orderService) ToggleDelivered(ctx context.Context, id int64, delivered bool) error {
	if err := s.orderRepo.UpdateDeliveredStatus(ctx, id, delivered); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		s.log(ctx).ErrorContext(ctx, "toggle delivered failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrOrderUpdateFailed
	}

	s.viewCache.Invalidate(ctx, service.ViewOrders)

	return nil
}

// DeleteOrder removes an order; items and modifiers go with it via the
// store's cascade rules.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orderRepo.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		s.log(ctx).ErrorContext(ctx, "delete order failed", slog.Int64("id", id), slog.Any("error", err))

		return domainerrors.ErrOrderDeleteFailed
	}

	s.viewCache.Invalidate(ctx, service.ViewOrders)

	return nil
}
