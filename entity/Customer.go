package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name        string `gorm:"size:100" json:"name"`
	Email       string `gorm:"uniqueIndex;size:100" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phoneNumber"`
	Address     string `json:"address"`
	Password    string `gorm:"size:100" json:"-"` // bcrypt hash
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
