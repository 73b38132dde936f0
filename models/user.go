package models

import "gorm.io/gorm"

const (
	RoleUser   = "user"
	RoleArtist = "artist"
)

type User struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Email          string `gorm:"unique;not null"`
	Password       string `gorm:"not null" json:"-"`
	Phone          string
	Role           string `gorm:"not null;default:user"`
	ProfilePicture string `gorm:"default:default-avatar.png"`
	Theme          string `gorm:"default:light"`
	Language       string `gorm:"default:en"`
	Addresses      []Address
	Orders         []Order
	LoginTokens    []LoginToken
}
