package handlers

import (
	"fmt"
	"strings"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/google/uuid"
)

// Allowed forward edges of the order status machine. delivered and
// cancelled are terminal; same-state transitions are not allowed.
var validStatusTransitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusProcessing, models.OrderStatusCancelled},
	models.OrderStatusProcessing: {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped:    {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered:  {},
	models.OrderStatusCancelled:  {},
}

func isKnownOrderStatus(status string) bool {
	_, ok := validStatusTransitions[status]
	return ok
}

func isValidStatusTransition(current, next string) bool {
	for _, allowed := range validStatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

func isKnownPaymentMethod(method string) bool {
	switch method {
	case models.PaymentMethodCard, models.PaymentMethodUPI, models.PaymentMethodCOD:
		return true
	}
	return false
}

// newTrackingDetails generates the tracking snapshot exactly once per order.
// The number is uuid-derived rather than timestamp-derived so concurrent
// orders cannot collide.
func newTrackingDetails() models.TrackingDetails {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	trackingNumber := "TRK" + token[:16]
	return models.TrackingDetails{
		TrackingNumber: trackingNumber,
		Carrier:        "Express Delivery",
		TrackingURL:    fmt.Sprintf("https://tracking.delivery/track/%s", trackingNumber),
	}
}

// orderTotal sums quantity times the unit price captured at order time.
func orderTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}
