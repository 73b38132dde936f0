package models

import "gorm.io/gorm"

type Shop struct {
	gorm.Model
	Name    string `gorm:"unique;not null"`
	OwnerID uint   `gorm:"uniqueIndex;not null"`
	Owner   User
}
