package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;size:100" json:"name"`
	Description string `json:"description"`
	CuisineType string `gorm:"index;size:50" json:"cuisineType"`
	Address     string `json:"address"`
	PhoneNumber string `gorm:"size:20" json:"phoneNumber"`

	// Recomputed from the review set, never written directly.
	Rating float64 `gorm:"default:0" json:"rating"`

	IsActive    bool   `gorm:"default:true" json:"isActive"`
	OpeningTime string `gorm:"size:5" json:"openingTime"` // "HH:MM"
	ClosingTime string `gorm:"size:5" json:"closingTime"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Reviews   []Review   `json:"-"`
}
