package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"index;size:20" json:"status"`

	// Frozen at creation from the item snapshots; never recomputed.
	Total float64 `json:"total"`

	DeliveryAddress     string `json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`

	CustomerID uint     `gorm:"index" json:"customerId"`
	Customer   Customer `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems    []OrderItem         `json:"-"`
	StatusChanges []OrderStatusChange `json:"-"`
	Review        *Review             `json:"-"`
}
