package middleware

import (
	"strings"

	"github.com/Meenakshi-Adapa/CraftHub/jwt"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token if one is present and stores the
// authenticated identity on the request context. Requests without a valid
// token pass through unauthenticated; CheckLoginMiddleware rejects them on
// routes that need a caller.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if token == "" || token == authHeader {
			c.Next()
			return
		}

		userID, role, err := jwt.VerifyToken(token, db)
		if err != nil {
			log.Debug().Err(err).Msg("token verification failed")
			c.Next()
			return
		}

		c.Set("Token", token)
		c.Set("UserID", userID)
		c.Set("Role", role)
		c.Next()
	}
}
