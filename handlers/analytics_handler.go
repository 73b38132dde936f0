package handlers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const recentSalesLimit = 5

// GetPerformanceHandler aggregates the caller's sales into the dashboard
// numbers: totals, distinct buyers, catalog rating, recent sales.
func GetPerformanceHandler(c *gin.Context, db *gorm.DB) {
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
			"message": "Error fetching performance data",
		})
		return
	}

	totalRevenue := 0.0
	buyers := make(map[uint]struct{})
	for _, sale := range sales {
		totalRevenue += sale.Amount
		buyers[sale.BuyerID] = struct{}{}
	}

	var products []models.Product
	if err := db.Where("artist_id = ?", userID).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error fetching performance data",
		})
		return
	}

	ratingTotal := 0.0
	rated := 0
	for _, product := range products {
		if product.AverageRating > 0 {
			ratingTotal += product.AverageRating
			rated++
		}
	}
	averageRating := 0.0
	if rated > 0 {
		averageRating = ratingTotal / float64(rated)
	}

	recent := sales
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}
	recentSales := make([]gin.H, 0, len(recent))
	for _, sale := range recent {
		recentSales = append(recentSales, gin.H{
			"productName":  sale.Product.Name,
			"customerName": sale.Buyer.Name,
			"date":         sale.CreatedAt,
			"amount":       sale.Amount,
		})
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		productList = append(productList, productSummary(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"totalSales":     len(sales),
			"totalRevenue":   totalRevenue,
			"totalCustomers": len(buyers),
			"averageRating":  averageRating,
			"recentSales":    recentSales,
			"products":       productList,
		},
	})
}
