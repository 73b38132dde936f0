package handlers

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAddressesHandler returns the caller's saved addresses.
func GetAddressesHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var addresses []models.Address
	if err := db.Where("user_id = ?", userID).Order("id").Find(&addresses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"addresses": addresses,
	})
}

// AddAddressHandler saves a new address. When the new address is marked
// default, every other address of the user loses the flag in the same
// transaction.
func AddAddressHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var addressReq struct {
		FullName     string `json:"fullName" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
		AddressLine1 string `json:"addressLine1" binding:"required"`
		AddressLine2 string `json:"addressLine2"`
		City         string `json:"city" binding:"required"`
		State        string `json:"state" binding:"required"`
		Pincode      string `json:"pincode" binding:"required"`
		IsDefault    bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&addressReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	address := models.Address{
		UserID:       userID,
		FullName:     addressReq.FullName,
		Phone:        addressReq.Phone,
		AddressLine1: addressReq.AddressLine1,
		AddressLine2: addressReq.AddressLine2,
		City:         addressReq.City,
		State:        addressReq.State,
		Pincode:      addressReq.Pincode,
		IsDefault:    addressReq.IsDefault,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Address added successfully",
		"address": address,
	})
}

// UpdateAddressHandler updates fields of one of the caller's addresses.
// Promoting an address to default demotes the others.
func UpdateAddressHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var addressReq struct {
		FullName     *string `json:"fullName"`
		Phone        *string `json:"phone"`
		AddressLine1 *string `json:"addressLine1"`
		AddressLine2 *string `json:"addressLine2"`
		City         *string `json:"city"`
		State        *string `json:"state"`
		Pincode      *string `json:"pincode"`
		IsDefault    *bool   `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&addressReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	var address models.Address
	err := db.Where("id = ? AND user_id = ?", c.Param("addressId"), userID).First(&address).Error
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

	if addressReq.FullName != nil {
		address.FullName = *addressReq.FullName
	}
	if addressReq.Phone != nil {
		address.Phone = *addressReq.Phone
	}
	if addressReq.AddressLine1 != nil {
		address.AddressLine1 = *addressReq.AddressLine1
	}
	if addressReq.AddressLine2 != nil {
		address.AddressLine2 = *addressReq.AddressLine2
	}
	if addressReq.City != nil {
		address.City = *addressReq.City
	}
	if addressReq.State != nil {
		address.State = *addressReq.State
	}
	if addressReq.Pincode != nil {
		address.Pincode = *addressReq.Pincode
	}

	promote := addressReq.IsDefault != nil && *addressReq.IsDefault
	if promote {
		address.IsDefault = true
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if promote {
			err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", userID, address.ID).
				Update("is_default", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Save(&address).Error
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
		"message": "Address updated successfully",
		"address": address,
	})
}

// DeleteAddressHandler removes an address. Deleting the default promotes
// the first remaining address so the user never loses a default while one
// exists.
func DeleteAddressHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var address models.Address
	err := db.Where("id = ? AND user_id = ?", c.Param("addressId"), userID).First(&address).Error
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

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&address).Error; err != nil {
			return err
		}
		if !address.IsDefault {
			return nil
		}

		var next models.Address
		err := tx.Where("user_id = ?", userID).Order("id").First(&next).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&next).Update("is_default", true).Error
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
		"message": "Address deleted successfully",
	})
}
