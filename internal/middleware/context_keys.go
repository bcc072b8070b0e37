package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	userID, ok := val.(string)
	return userID, ok
}

// GetUsernameFromContext retrieves the authenticated username from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(usernameKey)
	username, ok := val.(string)
	return username, ok
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userRoleKey)
	role, ok := val.(string)
	return role, ok
}
