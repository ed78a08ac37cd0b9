package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"size:100" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"size:50" json:"category"`

	IsVegetarian bool `gorm:"default:false" json:"isVegetarian"`
	IsVegan      bool `gorm:"default:false" json:"isVegan"`
	IsAvailable  bool `gorm:"default:true" json:"isAvailable"`

	// Minutes; 0 means unknown.
	PreparationTime int `json:"preparationTime"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
