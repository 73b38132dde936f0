package handlers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func salesResponse(sales []models.Sale) []gin.H {
	data := make([]gin.H, 0, len(sales))
	for _, sale := range sales {
		data = append(data, gin.H{
			"id": sale.ID,
			"product": gin.H{
				"id":   sale.ProductID,
				"name": sale.Product.Name,
			},
			"buyer": gin.H{
				"id":   sale.BuyerID,
				"name": sale.Buyer.Name,
			},
			"orderId":   sale.OrderID,
			"quantity":  sale.Quantity,
			"amount":    sale.Amount,
			"createdAt": sale.CreatedAt,
		})
	}
	return data
}

// GetSalesHandler lists every sale. Sales are the back-link rows written
// at order time, so this is a traceability view, not an accounting ledger.
func GetSalesHandler(c *gin.Context, db *gorm.DB) {
	var sales []models.Sale
	err := db.Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Order("created_at DESC").
		Find(&sales).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    salesResponse(sales),
	})
}

// GetSellerSalesHandler lists the caller's own sales.
func GetSellerSalesHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
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
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    salesResponse(sales),
	})
}

// CreateSaleHandler records a manual sale for the caller, for sales made
// outside the order flow.
func CreateSaleHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var saleReq struct {
		ProductID uint    `json:"productId" binding:"required"`
		BuyerID   uint    `json:"buyerId" binding:"required"`
		OrderID   uint    `json:"orderId"`
		Quantity  uint    `json:"quantity" binding:"required,min=1"`
		Amount    float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&saleReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	sale := models.Sale{
		ProductID: saleReq.ProductID,
		OrderID:   saleReq.OrderID,
		BuyerID:   saleReq.BuyerID,
		SellerID:  userID,
		Quantity:  saleReq.Quantity,
		Amount:    saleReq.Amount,
	}
	if err := db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":       sale.ID,
			"quantity": sale.Quantity,
			"amount":   sale.Amount,
		},
	})
}
