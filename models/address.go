package models

import "gorm.io/gorm"

// At most one address per user may have IsDefault set. The handlers keep
// that invariant by clearing the other rows whenever one is promoted.
type Address struct {
	gorm.Model
	UserID       uint   `gorm:"not null;index"`
	FullName     string `gorm:"not null"`
	Phone        string `gorm:"not null"`
	AddressLine1 string `gorm:"not null"`
	AddressLine2 string
	City         string `gorm:"not null"`
	State        string `gorm:"not null"`
	Pincode      string `gorm:"not null"`
	IsDefault    bool   `gorm:"not null;default:false"`
}
