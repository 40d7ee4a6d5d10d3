package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

const userIDKey = "userID"

// Auth requires a valid bearer token and injects the resolved user id into
// the request context. Tokens are opaque strings matched against the users
// table.
func Auth(database *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		userID, err := services.ResolveToken(database, token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header, tolerating a
// missing "Bearer " prefix the way the front-end has always sent it.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}

// UserID returns the authenticated user id set by Auth, or 0.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
