package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"
	PaymentMethodCOD  = "cod"
)

type OrderConfirmation struct {
	Confirmed             bool `gorm:"not null;default:false"`
	ConfirmationDate      *time.Time
	EstimatedDeliveryDate *time.Time
}

type TrackingDetails struct {
	TrackingNumber string
	Carrier        string
	TrackingURL    string
}

// Immutable once created except Status and the confirmation fields.
// TotalAmount is computed from catalog prices at creation and frozen.
type Order struct {
	gorm.Model
	UserID        uint `gorm:"not null;index"`
	User          User
	OrderItems    []OrderItem
	AddressID     uint    `gorm:"not null"`
	PaymentMethod string  `gorm:"not null"`
	TotalAmount   float64 `gorm:"not null"`
	Status        string  `gorm:"not null"`
	PaymentStatus string  `gorm:"not null"`
	Confirmation  OrderConfirmation `gorm:"embedded;embeddedPrefix:confirmation_"`
	Tracking      TrackingDetails   `gorm:"embedded;embeddedPrefix:tracking_"`
}
