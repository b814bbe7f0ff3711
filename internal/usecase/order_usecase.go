package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartAddress is the delivery address of a cart submission. Only the street is
// required.
type CartAddress struct {
	Street    string `json:"street"`
	FloorApt  string `json:"floor_apt"`
	Reference string `json:"reference"`
}

// CartRemovedIngredient marks a base ingredient the customer wants left out.
type CartRemovedIngredient struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
}

// CartExtraIngredient is an ingredient added to an item. The cost submitted
// here is snapshotted into the order.
type CartExtraIngredient struct {
	IngredientID int64           `json:"ingredient_id"`
	Name         string          `json:"name"`
	ExtraCost    decimal.Decimal `json:"extra_cost"`
}

// CartItem is one line of the cart. Product name and base price travel with
// the submission and are snapshotted verbatim; the totals, however, are always
// recomputed server-side from these fields, never taken from a client total.
type CartItem struct {
	ProductID          int64                   `json:"product_id"`
	ProductName        string                  `json:"product_name"`
	BasePrice          decimal.Decimal         `json:"base_price"`
	Quantity           int                     `json:"quantity"`
	Note               string                  `json:"note"`
	RemovedIngredients []CartRemovedIngredient `json:"removed_ingredients"`
	ExtraIngredients   []CartExtraIngredient   `json:"extra_ingredients"`
}

// CartSubmission is the inbound order-entry payload.
type CartSubmission struct {
	Address        CartAddress     `json:"address"`
	Items          []CartItem      `json:"items"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	DiscountReason string          `json:"discount_reason"`
}

// OrderUsecase defines the interface for order management use cases.
type OrderUsecase interface {
	// CreateOrder validates the cart, computes the authoritative total
	// server-side and writes the whole order graph in one transaction.
	// The returned id exists only after the transaction commits.
	CreateOrder(ctx context.Context, cart CartSubmission) (int64, error)

	// ListOrders returns all retained orders as nested aggregates, newest
	// first. As a documented side effect it first purges orders older than
	// the retention window; a purge failure is logged and never blocks the
	// read.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrder retrieves a single order aggregate by id.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ToggleDelivered sets the delivered flag of an order. Calling it twice
	// with the same value is idempotent.
	ToggleDelivered(ctx context.Context, id int64, delivered bool) error

	// DeleteOrder removes an order and, via the store's cascade, its items
	// and modifiers.
	DeleteOrder(ctx context.Context, id int64) error
}
