// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ingredient represents a catalog ingredient that can be part of a product or
// added to an order item for an extra cost.
type Ingredient struct {
	ID        int64           `json:"id"`         // Auto-incrementing identifier assigned by the store.
	Name      string          `json:"name"`       // Display name. Unique by convention, not enforced.
	ExtraCost decimal.Decimal `json:"extra_cost"` // Cost added when the ingredient is ordered as an extra. Never negative.
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
