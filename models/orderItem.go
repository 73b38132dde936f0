package models

import "gorm.io/gorm"

// UnitPrice is the catalog price at order time and is never re-read.
type OrderItem struct {
	gorm.Model
	OrderID   uint `gorm:"not null;index"`
	ProductID uint `gorm:"not null"`
	Product   Product
	Quantity  uint    `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
}
