package handlers

import "github.com/gin-gonic/gin"

// currentUserID reads the authenticated identity that AuthMiddleware put on
// the request context. Handlers behind CheckLoginMiddleware always get a
// value; the check stays because the handler contract is ownership-scoped.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("UserID")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
