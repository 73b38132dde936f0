package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const uploadsDir = "./uploads"

func isValidImageExtension(file *multipart.FileHeader) bool {
	allowed := []string{".jpg", ".jpeg", ".png"}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	for _, allowedExt := range allowed {
		if ext == allowedExt {
			return true
		}
	}
	return false
}

func makeUniqueFileName(file *multipart.FileHeader) string {
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(file.Filename, ext)
	return fmt.Sprintf("%s_%d%s", base, time.Now().UnixNano(), ext)
}

// UploadImageHandler saves a product image under ./uploads and returns its
// public path. Compression and resizing are out of scope.
func UploadImageHandler(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "An image is required",
		})
		return
	}

	if !isValidImageExtension(file) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Unsupported image format",
		})
		return
	}

	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	imageName := makeUniqueFileName(file)
	filePath := filepath.Join(uploadsDir, imageName)
	if err := c.SaveUploadedFile(file, filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"imagePath": "/" + filepath.ToSlash(filePath),
	})
}
