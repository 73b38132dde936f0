package middleware

import (
	"net/http"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
)

// CheckArtistPermissionMiddleware aborts the request unless the caller has
// the artist role.
func CheckArtistPermissionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("Role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication failed",
			})
			c.Abort()
			return
		}
		if role != models.RoleArtist {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Artist account required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
