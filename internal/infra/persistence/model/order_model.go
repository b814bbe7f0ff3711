package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table. The snapshot
// columns on this row and its children are written once and never updated.
type OrderModel struct {
	ID               int64           `gorm:"primaryKey;autoIncrement"`
	AddressStreet    string          `gorm:"not null"`
	AddressFloorApt  string          `gorm:"not null;default:''"`
	AddressReference string          `gorm:"not null;default:''"`
	DiscountAmount   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	DiscountReason   string          `gorm:"not null;default:''"`
	TotalSnapshot    decimal.Decimal `gorm:"type:numeric;not null"`
	StatusDelivered  bool            `gorm:"not null;default:false"`
	CreatedAt        time.Time       `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// ProductID is nullable: deleting a catalog product nulls the reference while
// the snapshot columns keep the historical line intact.
type OrderItemModel struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement"`
	OrderID             int64           `gorm:"not null;index"`
	ProductID           *int64          `gorm:"index"`
	ProductNameSnapshot string          `gorm:"not null"`
	BasePriceSnapshot   decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Quantity            int             `gorm:"not null;default:1"`
	Note                string          `gorm:"not null;default:''"`

	Product            *ProductModel                     `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	RemovedIngredients []OrderItemRemovedIngredientModel `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
	ExtraIngredients   []OrderItemExtraIngredientModel   `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderItemRemovedIngredientModel marks a base ingredient excluded from an
// item. Informational only; no price effect.
type OrderItemRemovedIngredientModel struct {
	ID                     int64  `gorm:"primaryKey;autoIncrement"`
	OrderItemID            int64  `gorm:"not null;index"`
	IngredientID           *int64 `gorm:"index"`
	IngredientNameSnapshot string `gorm:"not null"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemRemovedIngredientModel) TableName() string {
	return "order_item_removed_ingredients"
}

// OrderItemExtraIngredientModel is an ingredient added to an item, with its
// cost snapshotted at purchase time.
type OrderItemExtraIngredientModel struct {
	ID                     int64           `gorm:"primaryKey;autoIncrement"`
	OrderItemID            int64           `gorm:"not null;index"`
	IngredientID           *int64          `gorm:"index"`
	IngredientNameSnapshot string          `gorm:"not null"`
	ExtraCostSnapshot      decimal.Decimal `gorm:"type:numeric;not null;default:0"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemExtraIngredientModel) TableName() string {
	return "order_item_extra_ingredients"
}
