package models

import "gorm.io/gorm"

// One sale row per order line item. Rows are written best-effort after the
// order commits; they are the non-authoritative product-to-order back-link
// and feed the shop sales and analytics views.
type Sale struct {
	gorm.Model
	ProductID uint `gorm:"not null;index"`
	Product   Product
	OrderID   uint `gorm:"not null;index"`
	BuyerID   uint `gorm:"not null"`
	Buyer     User
	SellerID  uint `gorm:"not null;index"`
	Seller    User
	Quantity  uint    `gorm:"not null"`
	Amount    float64 `gorm:"not null"`
}
