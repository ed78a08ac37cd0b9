package entity

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatusChange is an append-only record of every status write,
// including the initial PLACED row at order creation.
type OrderStatusChange struct {
	gorm.Model
	OrderID    uint        `gorm:"index" json:"orderId"`
	FromStatus OrderStatus `gorm:"size:20" json:"fromStatus"` // empty for the initial row
	ToStatus   OrderStatus `gorm:"size:20" json:"toStatus"`
	ChangedAt  time.Time   `json:"changedAt"`
}
