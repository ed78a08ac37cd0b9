package entity

import (
	"gorm.io/gorm"
)

// Review is insert-once: one review per order, immutable after
// creation. The unique index on OrderID is what settles concurrent
// submissions.
type Review struct {
	gorm.Model
	Rating  int    `json:"rating"` // 1..5
	Comment string `gorm:"size:1000" json:"comment"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	CustomerID uint     `gorm:"index" json:"customerId"`
	Customer   Customer `json:"-"`

	// Denormalized from the order so rating aggregation stays a single
	// table scan.
	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
