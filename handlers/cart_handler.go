package handlers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddToCartHandler adds a product to the caller's cart, creating the cart
// on first use. Adding a product that is already present merges into the
// existing row instead of appending a duplicate.
func AddToCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var cartItemReq struct {
		ProductID uint  `json:"productId" binding:"required"`
		Quantity  *uint `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Product ID is required",
		})
		return
	}

	quantity := uint(1)
	if cartItemReq.Quantity != nil {
		quantity = *cartItemReq.Quantity
	}
	if quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Valid quantity is required",
		})
		return
	}

	var product models.Product
	if err := db.First(&product, cartItemReq.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	var cart models.Cart
	err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	var cartItem models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.ID, cartItemReq.ProductID).
		First(&cartItem).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
		cartItem = models.CartItem{
			CartID:    cart.ID,
			ProductID: cartItemReq.ProductID,
			Quantity:  quantity,
		}
		if err := db.Create(&cartItem).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
	} else {
		cartItem.Quantity += quantity
		if err := db.Save(&cartItem).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Item added to cart",
		"productId": cartItem.ProductID,
		"quantity":  cartItem.Quantity,
	})
}

// GetCartHandler returns the cart items joined with their product fields.
// A user without a cart gets an empty list, not an error.
func GetCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).
		Preload("CartItems").
		Preload("CartItems.Product").
		First(&cart).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"products": []gin.H{},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	products := make([]gin.H, 0, len(cart.CartItems))
	for _, item := range cart.CartItems {
		products = append(products, gin.H{
			"productId":   item.ProductID,
			"name":        item.Product.Name,
			"description": item.Product.Description,
			"price":       item.Product.Price,
			"category":    item.Product.Category,
			"imageUrl":    item.Product.ImageURL,
			"quantity":    item.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// UpdateCartItemQuantityHandler sets the quantity of one cart line item.
// Quantities below one are rejected; removal goes through the delete route.
func UpdateCartItemQuantityHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var quantityReq struct {
		Quantity uint `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&quantityReq); err != nil || quantityReq.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Valid quantity is required",
		})
		return
	}

	var cart models.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Cart item not found",
		})
		return
	}

	result := db.Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("productId")).
		Update("quantity", quantityReq.Quantity)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Cart item not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart updated",
	})
}

// DeleteCartItemHandler removes one product from the cart. Removing a
// product that is not present still succeeds.
func DeleteCartItemHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if err == nil {
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, c.Param("productId")).
			Delete(&models.CartItem{}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item removed from cart",
	})
}

// ClearCartHandler empties the caller's cart.
func ClearCartHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if err == nil {
		err = db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}
