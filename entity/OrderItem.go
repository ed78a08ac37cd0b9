package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`

	// Snapshot of the menu item's price at order time. Later price
	// changes never touch this.
	PriceAtOrder float64 `json:"priceAtOrder"`

	SpecialRequest string `json:"specialRequest"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"index" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
