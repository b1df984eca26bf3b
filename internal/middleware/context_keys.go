package middleware

import "github.com/gin-gonic/gin"

// userKey stores the authenticated username in the request context.
const userKey = contextKey("user")

// GetUserFromContext retrieves the authenticated username from the request.
// The second return value reports whether a user was found.
func GetUserFromContext(c *gin.Context) (string, bool) {
	user, ok := c.Request.Context().Value(userKey).(string)
	if !ok {
		return "", false
	}
	return user, true
}
