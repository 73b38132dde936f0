package models

import "gorm.io/gorm"

// One row per distinct product in a cart; adds merge into the row.
type CartItem struct {
	gorm.Model
	CartID    uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null"`
	Product   Product
	Quantity  uint `gorm:"not null"`
}
