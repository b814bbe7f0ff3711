package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog product together with its base
// ingredients. Deleting or editing a product never affects orders already
// placed; order rows carry their own snapshot of the product data.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"` // Base price before extras. Never negative.
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Ingredients []Ingredient    `json:"ingredients"` // Base ingredients, ordered by name.
}
