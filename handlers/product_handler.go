package handlers

import (
	"net/http"
	"strconv"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const maxProductPageSize = 50

func productSummary(product *models.Product) gin.H {
	return gin.H{
		"id":            product.ID,
		"name":          product.Name,
		"description":   product.Description,
		"price":         product.Price,
		"category":      product.Category,
		"imageUrl":      product.ImageURL,
		"averageRating": product.AverageRating,
	}
}

// GetProductListHandler serves the catalog list from the redis cache,
// rebuilding it from the database on a miss.
func GetProductListHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid limit",
		})
		return
	}
	if limit > maxProductPageSize {
		limit = maxProductPageSize
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid offset",
		})
		return
	}

	products, hit := cachedProductList(c, rdb, int64(offset), int64(offset+limit-1))
	if !hit {
		rebuildProductCache(c, rdb, db)

		err := db.Order("id").Limit(limit).Offset(offset).Find(&products).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		productList = append(productList, productSummary(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": productList,
	})
}

// GetProductDataHandler returns one product with its artist and comments.
func GetProductDataHandler(c *gin.Context, db *gorm.DB) {
	var product models.Product
	err := db.Preload("Artist").
		Preload("Comments").
		Preload("Comments.User").
		First(&product, c.Param("productId")).Error
	if err != nil {
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

	comments := make([]gin.H, 0, len(product.Comments))
	for _, comment := range product.Comments {
		comments = append(comments, gin.H{
			"user": gin.H{
				"id":   comment.UserID,
				"name": comment.User.Name,
			},
			"rating":    comment.Rating,
			"text":      comment.Text,
			"createdAt": comment.CreatedAt,
		})
	}

	data := productSummary(&product)
	data["artist"] = gin.H{
		"id":   product.ArtistID,
		"name": product.Artist.Name,
	}
	data["comments"] = comments

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// GetCategoryProductsHandler lists the products of one category.
func GetCategoryProductsHandler(c *gin.Context, db *gorm.DB) {
	var products []models.Product
	err := db.Where("category = ?", c.Param("categoryName")).Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		productList = append(productList, productSummary(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": productList,
	})
}

// GetArtistProductsHandler lists the caller's own products.
func GetArtistProductsHandler(c *gin.Context, db *gorm.DB) {
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
			"message": "Server error",
		})
		return
	}

	productList := make([]gin.H, 0, len(products))
	for i := range products {
		productList = append(productList, productSummary(&products[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       productList,
		"totalCount": len(productList),
	})
}

// CreateProductHandler adds a product to the caller's catalog.
func CreateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var productReq struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
		Category    string  `json:"category" binding:"required"`
		ImageURL    string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&productReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	product := models.Product{
		Name:        productReq.Name,
		Description: productReq.Description,
		Price:       productReq.Price,
		Category:    productReq.Category,
		ImageURL:    productReq.ImageURL,
		ArtistID:    userID,
	}
	if err := db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	cacheProduct(c, rdb, &product)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    productSummary(&product),
	})
}

// UpdateProductHandler edits one of the caller's products.
func UpdateProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var productReq struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Category    *string  `json:"category"`
		ImageURL    *string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&productReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	var product models.Product
	err := db.Where("id = ? AND artist_id = ?", c.Param("productId"), userID).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Product not found or you do not have permission to edit it",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if productReq.Price != nil && *productReq.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Price must be a valid positive number",
		})
		return
	}

	if productReq.Name != nil {
		product.Name = *productReq.Name
	}
	if productReq.Description != nil {
		product.Description = *productReq.Description
	}
	if productReq.Price != nil {
		product.Price = *productReq.Price
	}
	if productReq.Category != nil {
		product.Category = *productReq.Category
	}
	if productReq.ImageURL != nil {
		product.ImageURL = *productReq.ImageURL
	}

	if err := db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	cacheProduct(c, rdb, &product)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    productSummary(&product),
	})
}

// DeleteProductHandler removes one of the caller's products.
func DeleteProductHandler(c *gin.Context, db *gorm.DB, rdb *redis.Client) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var product models.Product
	err := db.Where("id = ? AND artist_id = ?", c.Param("productId"), userID).First(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Product not found or you do not have permission to delete it",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if err := db.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	evictProduct(c, rdb, product.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

// AddCommentHandler attaches a rating and comment to a product and
// recomputes the average rating from every comment.
func AddCommentHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var commentReq struct {
		Rating uint   `json:"rating" binding:"required,min=1,max=5"`
		Text   string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&commentReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Rating and comment text are required",
		})
		return
	}

	var product models.Product
	if err := db.First(&product, c.Param("productId")).Error; err != nil {
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

	err := db.Transaction(func(tx *gorm.DB) error {
		comment := models.Comment{
			ProductID: product.ID,
			UserID:    userID,
			Rating:    commentReq.Rating,
			Text:      commentReq.Text,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		var comments []models.Comment
		if err := tx.Where("product_id = ?", product.ID).Find(&comments).Error; err != nil {
			return err
		}

		total := 0.0
		for _, existing := range comments {
			total += float64(existing.Rating)
		}
		product.AverageRating = total / float64(len(comments))

		return tx.Model(&product).Update("average_rating", product.AverageRating).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Comment added successfully",
		"data":    productSummary(&product),
	})
}
