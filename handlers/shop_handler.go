package handlers

import (
	"net/http"
	"strings"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CheckShopHandler reports whether the caller already has a shop.
func CheckShopHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var shop models.Shop
	err := db.Where("owner_id = ?", userID).First(&shop).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	response := gin.H{
		"success": true,
		"hasShop": err == nil,
	}
	if err == nil {
		response["shop"] = gin.H{
			"id":   shop.ID,
			"name": shop.Name,
		}
	}
	c.JSON(http.StatusOK, response)
}

// CheckShopNameHandler reports whether a shop name is still free.
// Matching is case-insensitive.
func CheckShopNameHandler(c *gin.Context, db *gorm.DB) {
	var nameReq struct {
		ShopName string `json:"shopName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&nameReq); err != nil || strings.TrimSpace(nameReq.ShopName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Shop name is required",
		})
		return
	}

	var count int64
	err := db.Model(&models.Shop{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(nameReq.ShopName))).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	message := "Shop name available"
	if count > 0 {
		message = "Shop name already taken"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"available": count == 0,
		"message":   message,
	})
}

// CreateShopHandler opens the caller's shop. One shop per artist.
func CreateShopHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var shopReq struct {
		ShopName string `json:"shopName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&shopReq); err != nil || strings.TrimSpace(shopReq.ShopName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Shop name is required",
		})
		return
	}

	shop := models.Shop{
		Name:    strings.TrimSpace(shopReq.ShopName),
		OwnerID: userID,
	}
	if err := db.Create(&shop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error creating shop",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Shop created successfully",
		"data": gin.H{
			"id":   shop.ID,
			"name": shop.Name,
		},
	})
}

// GetShopDetailsHandler returns the caller's shop.
func GetShopDetailsHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var shop models.Shop
	err := db.Where("owner_id = ?", userID).First(&shop).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Shop not found",
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
		"data": gin.H{
			"id":        shop.ID,
			"name":      shop.Name,
			"createdAt": shop.CreatedAt,
		},
	})
}

// GetShopSalesHandler returns the caller's sales, newest first.
func GetShopSalesHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var shop models.Shop
	if err := db.Where("owner_id = ?", userID).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Shop not found",
		})
		return
	}

	var sales []models.Sale
	err := db.Where("seller_id = ?", userID).
		Preload("Product").
		Preload("Buyer").
		Order("created_at DESC").
		Find(&sales).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching sales data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    salesResponse(sales),
	})
}

// GetShopProductsHandler returns the caller's catalog for the shop view.
func GetShopProductsHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var products []models.Product
	err := db.Where("artist_id = ?", userID).Order("created_at DESC").Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching shop products",
		})
		return
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		productList = append(productList, productSummary(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    productList,
	})
}
