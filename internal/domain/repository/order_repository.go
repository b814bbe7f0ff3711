package repository

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
	"comanda/internal/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence. The multi-row
// write and the aggregate read are expected to run inside a transaction
// obtained from the TransactionManager.
type OrderRepository interface {
	// CreateOrder persists the full order graph: the order row, one row per
	// item and one row per removed/extra ingredient, copying the snapshot
	// columns from the entity. Generated ids are written back into the entity.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// ListOrders retrieves all orders newest-first as fully nested aggregates.
	// Child rows are batch-fetched with id IN (...) queries and grouped in
	// memory; items come back in ascending id order within each order.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// FindOrderByID retrieves a single order as a nested aggregate.
	// Returns ErrOrderNotFound when no row matches.
	FindOrderByID(ctx context.Context, id int64) (*entity.Order, error)

	// DeleteOrdersBefore removes every order created strictly before the
	// cutoff. Returns the number of orders removed.
	DeleteOrdersBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// UpdateDeliveredStatus flips the delivered flag on a single order.
	// Returns ErrOrderNotFound when no row matches.
	UpdateDeliveredStatus(ctx context.Context, id int64, delivered bool) error

	// DeleteOrder removes an order by id; items and modifiers go with it via
	// the store's cascade rules. Returns ErrOrderNotFound when no row matches.
	DeleteOrder(ctx context.Context, id int64) error
}
