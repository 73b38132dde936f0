package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name          string  `gorm:"not null"`
	Description   string  `gorm:"not null"`
	Price         float64 `gorm:"not null"`
	Category      string  `gorm:"not null;index"`
	ImageURL      string
	ArtistID      uint `gorm:"not null;index"`
	Artist        User
	Comments      []Comment
	AverageRating float64 `gorm:"not null;default:0"`
}
