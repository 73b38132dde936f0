package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckLoginMiddleware aborts the request when no authenticated user was
// established by AuthMiddleware.
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("UserID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication failed",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
