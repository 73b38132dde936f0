package models

import "gorm.io/gorm"

type Wishlist struct {
	gorm.Model
	UserID uint           `gorm:"uniqueIndex;not null"`
	Items  []WishlistItem `gorm:"foreignKey:WishlistID"`
}

type WishlistItem struct {
	gorm.Model
	WishlistID uint `gorm:"not null;index"`
	ProductID  uint `gorm:"not null"`
	Product    Product
	FolderID   *uint
}

type WishlistFolder struct {
	gorm.Model
	UserID uint   `gorm:"not null;index"`
	Name   string `gorm:"not null"`
}
