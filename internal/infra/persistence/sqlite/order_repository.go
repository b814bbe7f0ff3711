package sqlite

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists the whole order graph row by row: the order, then each
// item, then each item's removed/extra ingredient rows. The caller is expected
// to run this inside TransactionManager.Execute so a failure on any row leaves
// no trace of the order. Generated ids are written back into the entity.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		AddressStreet:    order.AddressStreet,
		AddressFloorApt:  order.AddressFloorApt,
		AddressReference: order.AddressReference,
		DiscountAmount:   order.DiscountAmount,
		DiscountReason:   order.DiscountReason,
		TotalSnapshot:    order.TotalSnapshot,
		StatusDelivered:  order.StatusDelivered,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return errors.Wrap(err, "failed to insert order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	for itemIdx := range order.Items {
		item := &order.Items[itemIdx]

		itemM := &model.OrderItemModel{
			OrderID:             orderM.ID,
			ProductID:           item.ProductID,
			ProductNameSnapshot: item.ProductNameSnapshot,
			BasePriceSnapshot:   item.BasePriceSnapshot,
			Quantity:            item.Quantity,
			Note:                item.Note,
		}
		if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
			return errors.Wrap(err, "failed to insert order item")
		}
		item.ID = itemM.ID
		item.OrderID = orderM.ID

		for removedIdx := range item.RemovedIngredients {
			removed := &item.RemovedIngredients[removedIdx]
			removedM := &model.OrderItemRemovedIngredientModel{
				OrderItemID:            itemM.ID,
				IngredientID:           removed.IngredientID,
				IngredientNameSnapshot: removed.IngredientNameSnapshot,
			}
			if err := repo.db.WithContext(ctx).Create(removedM).Error; err != nil {
				return errors.Wrap(err, "failed to insert removed ingredient")
			}
			removed.ID = removedM.ID
		}

		for extraIdx := range item.ExtraIngredients {
			extra := &item.ExtraIngredients[extraIdx]
			extraM := &model.OrderItemExtraIngredientModel{
				OrderItemID:            itemM.ID,
				IngredientID:           extra.IngredientID,
				IngredientNameSnapshot: extra.IngredientNameSnapshot,
				ExtraCostSnapshot:      extra.ExtraCostSnapshot,
			}
			if err := repo.db.WithContext(ctx).Create(extraM).Error; err != nil {
				return errors.Wrap(err, "failed to insert extra ingredient")
			}
			extra.ID = extraM.ID
		}
	}

	return nil
}

// ListOrders retrieves all orders newest-first as fully nested aggregates.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return repo.loadAggregates(ctx, orderModels)
}

// FindOrderByID retrieves a single order as a nested aggregate.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	orders, err := repo.loadAggregates(ctx, []*model.OrderModel{&orderM})
	if err != nil {
		return nil, err
	}

	return orders[0], nil
}

// loadAggregates assembles nested aggregates from flat rows: one IN query for
// the items of every order, one per modifier table for the items' children,
// then an in-memory grouping pass keyed by parent id. This is an
// application-level join; the row count stays linear and no per-row queries
// are issued.
func (repo *orderRepository) loadAggregates(ctx context.Context, orderModels []*model.OrderModel) ([]*entity.Order, error) {
	if len(orderModels) == 0 {
		return []*entity.Order{}, nil
	}

	orderIDs := make([]int64, 0, len(orderModels))
	for _, orderM := range orderModels {
		orderIDs = append(orderIDs, orderM.ID)
	}

	var itemModels []*model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order items")
	}

	itemIDs := make([]int64, 0, len(itemModels))
	for _, itemM := range itemModels {
		itemIDs = append(itemIDs, itemM.ID)
	}

	removedByItem := make(map[int64][]entity.RemovedIngredient)
	extrasByItem := make(map[int64][]entity.ExtraIngredient)

	if len(itemIDs) > 0 {
		var removedModels []*model.OrderItemRemovedIngredientModel
		if err := repo.db.WithContext(ctx).
			Where("order_item_id IN ?", itemIDs).
			Find(&removedModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list removed ingredients")
		}
		for _, removedM := range removedModels {
			removedByItem[removedM.OrderItemID] = append(removedByItem[removedM.OrderItemID], entity.RemovedIngredient{
				ID:                     removedM.ID,
				IngredientID:           removedM.IngredientID,
				IngredientNameSnapshot: removedM.IngredientNameSnapshot,
			})
		}

		var extraModels []*model.OrderItemExtraIngredientModel
		if err := repo.db.WithContext(ctx).
			Where("order_item_id IN ?", itemIDs).
			Find(&extraModels).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list extra ingredients")
		}
		for _, extraM := range extraModels {
			extrasByItem[extraM.OrderItemID] = append(extrasByItem[extraM.OrderItemID], entity.ExtraIngredient{
				ID:                     extraM.ID,
				IngredientID:           extraM.IngredientID,
				IngredientNameSnapshot: extraM.IngredientNameSnapshot,
				ExtraCostSnapshot:      extraM.ExtraCostSnapshot,
			})
		}
	}

	itemsByOrder := make(map[int64][]entity.OrderItem, len(orderModels))
	for _, itemM := range itemModels {
		item := entity.OrderItem{
			ID:                  itemM.ID,
			OrderID:             itemM.OrderID,
			ProductID:           itemM.ProductID,
			ProductNameSnapshot: itemM.ProductNameSnapshot,
			BasePriceSnapshot:   itemM.BasePriceSnapshot,
			Quantity:            itemM.Quantity,
			Note:                itemM.Note,
			RemovedIngredients:  removedByItem[itemM.ID],
			ExtraIngredients:    extrasByItem[itemM.ID],
		}
		if item.RemovedIngredients == nil {
			item.RemovedIngredients = []entity.RemovedIngredient{}
		}
		if item.ExtraIngredients == nil {
			item.ExtraIngredients = []entity.ExtraIngredient{}
		}
		itemsByOrder[itemM.OrderID] = append(itemsByOrder[itemM.OrderID], item)
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order := toOrderDomain(orderM)
		order.Items = itemsByOrder[orderM.ID]
		if order.Items == nil {
			order.Items = []entity.OrderItem{}
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// DeleteOrdersBefore removes every order created strictly before the cutoff.
// An order aged exactly the retention window survives until the next read.
func (repo *orderRepository) DeleteOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge old orders")
	}

	return result.RowsAffected, nil
}

// UpdateDeliveredStatus flips the delivered flag on a single order.
func (repo *orderRepository) UpdateDeliveredStatus(ctx context.Context, id int64, delivered bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status_delivered", delivered)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivered status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteOrder removes an order by id; the store cascades the delete down to
// items and modifiers.
func (repo *orderRepository) DeleteOrder(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity without children.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		AddressStreet:    data.AddressStreet,
		AddressFloorApt:  data.AddressFloorApt,
		AddressReference: data.AddressReference,
		DiscountAmount:   data.DiscountAmount,
		DiscountReason:   data.DiscountReason,
		TotalSnapshot:    data.TotalSnapshot,
		StatusDelivered:  data.StatusDelivered,
		CreatedAt:        data.CreatedAt,
	}
}
