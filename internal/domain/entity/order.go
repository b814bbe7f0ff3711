package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable historical record of a purchase. All catalog data it
// references (product names, prices, ingredient costs) is snapshotted into the
// order graph at creation time, so later catalog edits or deletions never
// change what was sold or for how much.
//
// Lifecycle: created once, mutated only on StatusDelivered, removed either
// explicitly or by the retention purge.
type Order struct {
	ID               int64           `json:"id"`
	AddressStreet    string          `json:"address_street"`
	AddressFloorApt  string          `json:"address_floor_apt"`
	AddressReference string          `json:"address_reference"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	DiscountReason   string          `json:"discount_reason"`
	TotalSnapshot    decimal.Decimal `json:"total_snapshot"` // Computed server-side at write time, never recomputed.
	StatusDelivered  bool            `json:"status_delivered"`
	CreatedAt        time.Time       `json:"created_at"`
	Items            []OrderItem     `json:"items"` // Ordered by insertion (ascending id).
}

// OrderItem is a single line of an order. ProductID is a weak reference: the
// product may be deleted later, the snapshot columns keep the line meaningful.
type OrderItem struct {
	ID                  int64               `json:"id"`
	OrderID             int64               `json:"order_id"`
	ProductID           *int64              `json:"product_id"`
	ProductNameSnapshot string              `json:"product_name_snapshot"`
	BasePriceSnapshot   decimal.Decimal     `json:"base_price_snapshot"`
	Quantity            int                 `json:"quantity"`
	Note                string              `json:"note"`
	RemovedIngredients  []RemovedIngredient `json:"removed_ingredients"`
	ExtraIngredients    []ExtraIngredient   `json:"extra_ingredients"`
}

// RemovedIngredient marks a base ingredient left out of an item. Purely
// informational, it never changes the item price.
type RemovedIngredient struct {
	ID                     int64  `json:"id"`
	IngredientID           *int64 `json:"ingredient_id"`
	IngredientNameSnapshot string `json:"ingredient_name_snapshot"`
}

// ExtraIngredient is an ingredient added to an item; its snapshotted cost is
// part of the item total.
type ExtraIngredient struct {
	ID                     int64           `json:"id"`
	IngredientID           *int64          `json:"ingredient_id"`
	IngredientNameSnapshot string          `json:"ingredient_name_snapshot"`
	ExtraCostSnapshot      decimal.Decimal `json:"extra_cost_snapshot"`
}

// Subtotal returns the line total for the item: (base price + extras) × quantity.
func (i OrderItem) Subtotal() decimal.Decimal {
	extras := decimal.Zero
	for _, extra := range i.ExtraIngredients {
		extras = extras.Add(extra.ExtraCostSnapshot)
	}

	return i.BasePriceSnapshot.Add(extras).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
