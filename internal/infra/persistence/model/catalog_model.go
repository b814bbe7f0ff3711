// Package model contains the GORM-specific structs for the SQLite schema.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null"`
	ExtraCost decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ProductModel is the GORM-specific struct for the 'products' table.
// Deleting a product removes its join rows via cascade but leaves order
// snapshots untouched.
type ProductModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductIngredientModel is the join table between products and their base
// ingredients. The association set is always replaced wholesale on update.
type ProductIngredientModel struct {
	ProductID    int64            `gorm:"primaryKey"`
	IngredientID int64            `gorm:"primaryKey"`
	Product      *ProductModel    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Ingredient   *IngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductIngredientModel) TableName() string {
	return "product_ingredients"
}
