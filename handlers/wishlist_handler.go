package handlers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getOrCreateWishlist(db *gorm.DB, userID uint) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Where(models.Wishlist{UserID: userID}).FirstOrCreate(&wishlist).Error
	return wishlist, err
}

// ToggleWishlistHandler adds the product when absent and removes it when
// present.
func ToggleWishlistHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var toggleReq struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&toggleReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Product ID is required",
		})
		return
	}

	wishlist, err := getOrCreateWishlist(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	var item models.WishlistItem
	err = db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, toggleReq.ProductID).
		First(&item).Error
	if err == nil {
		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Server error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product removed from wishlist",
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	item = models.WishlistItem{
		WishlistID: wishlist.ID,
		ProductID:  toggleReq.ProductID,
	}
	if err := db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product added to wishlist",
	})
}

// GetWishlistHandler returns every saved product with its folder, if any.
func GetWishlistHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var wishlist models.Wishlist
	err := db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&wishlist).Error
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

	products := make([]gin.H, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		products = append(products, gin.H{
			"productId":   item.ProductID,
			"name":        item.Product.Name,
			"description": item.Product.Description,
			"price":       item.Product.Price,
			"category":    item.Product.Category,
			"imageUrl":    item.Product.ImageURL,
			"folderId":    item.FolderID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
	})
}

// CheckWishlistHandler reports whether one product is saved.
func CheckWishlistHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var wishlist models.Wishlist
	err := db.Where("user_id = ?", userID).First(&wishlist).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"isWishlisted": false,
		})
		return
	}

	var count int64
	db.Model(&models.WishlistItem{}).
		Where("wishlist_id = ? AND product_id = ?", wishlist.ID, c.Param("productId")).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"isWishlisted": count > 0,
	})
}

// RemoveFromWishlistHandler deletes a saved product. Idempotent.
func RemoveFromWishlistHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var wishlist models.Wishlist
	err := db.Where("user_id = ?", userID).First(&wishlist).Error
	if err == nil {
		err = db.Where("wishlist_id = ? AND product_id = ?", wishlist.ID, c.Param("productId")).
			Delete(&models.WishlistItem{}).Error
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
		"message": "Product removed from wishlist",
	})
}

// CreateWishlistFolderHandler adds a named folder for grouping saved
// products.
func CreateWishlistFolderHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var folderReq struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&folderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Folder name is required",
		})
		return
	}

	folder := models.WishlistFolder{
		UserID: userID,
		Name:   folderReq.Name,
	}
	if err := db.Create(&folder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"folder": gin.H{
			"id":   folder.ID,
			"name": folder.Name,
		},
	})
}

// GetWishlistFoldersHandler lists the caller's folders.
func GetWishlistFoldersHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var folders []models.WishlistFolder
	if err := db.Where("user_id = ?", userID).Find(&folders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	folderList := make([]gin.H, 0, len(folders))
	for _, folder := range folders {
		folderList = append(folderList, gin.H{
			"id":   folder.ID,
			"name": folder.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"folders": folderList,
	})
}

// RenameWishlistFolderHandler renames one of the caller's folders.
func RenameWishlistFolderHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var folderReq struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&folderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Folder name is required",
		})
		return
	}

	result := db.Model(&models.WishlistFolder{}).
		Where("id = ? AND user_id = ?", c.Param("folderId"), userID).
		Update("name", folderReq.Name)
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
			"message": "Folder not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Folder renamed",
	})
}

// DeleteWishlistFolderHandler removes a folder. Items that were filed in
// it stay on the wishlist, unfiled.
func DeleteWishlistFolderHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var folder models.WishlistFolder
	err := db.Where("id = ? AND user_id = ?", c.Param("folderId"), userID).First(&folder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Folder not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.WishlistItem{}).
			Where("folder_id = ?", folder.ID).
			Update("folder_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&folder).Error
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
		"message": "Folder deleted",
	})
}

// MoveToFolderHandler files a saved product into a folder, or unfiles it
// when folderId is null.
func MoveToFolderHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var moveReq struct {
		ProductID uint  `json:"productId" binding:"required"`
		FolderID  *uint `json:"folderId"`
	}
	if err := c.ShouldBindJSON(&moveReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Product ID is required",
		})
		return
	}

	var wishlist models.Wishlist
	if err := db.Where("user_id = ?", userID).First(&wishlist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Wishlist not found",
		})
		return
	}

	if moveReq.FolderID != nil {
		var folder models.WishlistFolder
		err := db.Where("id = ? AND user_id = ?", *moveReq.FolderID, userID).First(&folder).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Folder not found",
			})
			return
		}
	}

	result := db.Model(&models.WishlistItem{}).
		Where("wishlist_id = ? AND product_id = ?", wishlist.ID, moveReq.ProductID).
		Update("folder_id", moveReq.FolderID)
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
			"message": "Product not in wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product moved",
	})
}
