package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const estimatedDeliveryDays = 5

// PlaceOrderHandler creates an order snapshot from the caller's request.
// Unit prices always come from the product rows; any price in the request
// body is ignored. The order and its items commit in one transaction, then
// the sale back-link rows and the cart cleanup run best-effort.
func PlaceOrderHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var orderReq struct {
		AddressID     uint   `json:"addressId" binding:"required"`
		PaymentMethod string `json:"paymentMethod" binding:"required"`
		Items         []struct {
			ProductID uint `json:"productId" binding:"required"`
			Quantity  uint `json:"quantity" binding:"required,min=1"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&orderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	if !isKnownPaymentMethod(orderReq.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid payment method",
		})
		return
	}

	// The address must be one of the caller's saved addresses. It is
	// validated here once and never re-checked, even if later deleted.
	var address models.Address
	err := db.Where("id = ? AND user_id = ?", orderReq.AddressID, userID).First(&address).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	orderItems := make([]models.OrderItem, 0, len(orderReq.Items))
	products := make(map[uint]models.Product, len(orderReq.Items))
	for _, item := range orderReq.Items {
		var product models.Product
		err := db.First(&product, item.ProductID).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": fmt.Sprintf("Product with ID %d not found", item.ProductID),
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}

		products[product.ID] = product
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	now := time.Now()
	estimatedDelivery := now.AddDate(0, 0, estimatedDeliveryDays)

	order := models.Order{
		UserID:        userID,
		OrderItems:    orderItems,
		AddressID:     orderReq.AddressID,
		PaymentMethod: orderReq.PaymentMethod,
		TotalAmount:   orderTotal(orderItems),
		Status:        models.OrderStatusProcessing,
		PaymentStatus: models.PaymentStatusPending,
		Confirmation: models.OrderConfirmation{
			Confirmed:             true,
			ConfirmationDate:      &now,
			EstimatedDeliveryDate: &estimatedDelivery,
		},
		Tracking: newTrackingDetails(),
	}

	if err := db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create order",
		})
		return
	}

	// The sale rows are the product-to-order back-link. They are
	// non-authoritative, so a failure here must not fail the order.
	recordSales(db, &order, products)
	removeOrderedItemsFromCart(db, userID, orderItems)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"order": gin.H{
			"orderId":           order.ID,
			"status":            order.Status,
			"totalAmount":       order.TotalAmount,
			"paymentStatus":     order.PaymentStatus,
			"estimatedDelivery": order.Confirmation.EstimatedDeliveryDate,
			"trackingNumber":    order.Tracking.TrackingNumber,
			"trackingUrl":       order.Tracking.TrackingURL,
			"carrier":           order.Tracking.Carrier,
			"orderDate":         order.Confirmation.ConfirmationDate,
		},
	})
}

func recordSales(db *gorm.DB, order *models.Order, products map[uint]models.Product) {
	for _, item := range order.OrderItems {
		product := products[item.ProductID]
		sale := models.Sale{
			ProductID: item.ProductID,
			OrderID:   order.ID,
			BuyerID:   order.UserID,
			SellerID:  product.ArtistID,
			Quantity:  item.Quantity,
			Amount:    float64(item.Quantity) * item.UnitPrice,
		}
		if err := db.Create(&sale).Error; err != nil {
			log.Warn().Err(err).
				Uint("orderID", order.ID).
				Uint("productID", item.ProductID).
				Msg("failed to record sale back-link")
		}
	}
}

func removeOrderedItemsFromCart(db *gorm.DB, userID uint, items []models.OrderItem) {
	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return
	}

	productIDs := make([]uint, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	err := db.Where("cart_id = ? AND product_id IN ?", cart.ID, productIDs).
		Delete(&models.CartItem{}).Error
	if err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("failed to clear ordered items from cart")
	}
}

// GetOrderListHandler returns the caller's orders, newest first.
func GetOrderListHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var orders []models.Order
	err := db.Where("user_id = ?", userID).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	orderList := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		orderList = append(orderList, orderResponse(&order))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orderList,
	})
}

// GetOrderDataHandler returns one order, scoped to the caller.
func GetOrderDataHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var order models.Order
	err := db.Where("id = ? AND user_id = ?", c.Param("orderId"), userID).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   orderResponse(&order),
	})
}

// UpdateOrderStatusHandler moves an order forward through the transition
// table. Terminal states have no outgoing edges, so delivered and cancelled
// orders reject every request.
func UpdateOrderStatusHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var statusReq struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&statusReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	var order models.Order
	err := db.Where("id = ? AND user_id = ?", c.Param("orderId"), userID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if !isKnownOrderStatus(statusReq.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid order status",
		})
		return
	}

	if !isValidStatusTransition(order.Status, statusReq.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Cannot transition order from %s to %s", order.Status, statusReq.Status),
		})
		return
	}

	updates := map[string]interface{}{"status": statusReq.Status}
	if statusReq.Status == models.OrderStatusDelivered {
		now := time.Now()
		updates["confirmation_confirmed"] = true
		updates["confirmation_confirmation_date"] = now
	}

	if err := db.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}
	order.Status = statusReq.Status

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully",
		"order": gin.H{
			"orderId":   order.ID,
			"status":    order.Status,
			"updatedAt": order.UpdatedAt,
		},
	})
}

func orderResponse(order *models.Order) gin.H {
	items := make([]gin.H, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, gin.H{
			"productId": item.ProductID,
			"name":      item.Product.Name,
			"imageUrl":  item.Product.ImageURL,
			"quantity":  item.Quantity,
			"price":     item.UnitPrice,
		})
	}

	return gin.H{
		"orderId":       order.ID,
		"items":         items,
		"addressId":     order.AddressID,
		"paymentMethod": order.PaymentMethod,
		"totalAmount":   order.TotalAmount,
		"status":        order.Status,
		"paymentStatus": order.PaymentStatus,
		"orderConfirmation": gin.H{
			"confirmed":             order.Confirmation.Confirmed,
			"confirmationDate":      order.Confirmation.ConfirmationDate,
			"estimatedDeliveryDate": order.Confirmation.EstimatedDeliveryDate,
		},
		"trackingDetails": gin.H{
			"trackingNumber": order.Tracking.TrackingNumber,
			"carrier":        order.Tracking.Carrier,
			"trackingUrl":    order.Tracking.TrackingURL,
		},
		"createdAt": order.CreatedAt,
	}
}
