package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model
	ProductID uint `gorm:"not null;index"`
	UserID    uint `gorm:"not null"`
	User      User
	Rating    uint   `gorm:"not null"`
	Text      string `gorm:"not null"`
}
