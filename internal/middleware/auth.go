package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// TokenResolver maps an opaque session token to a user id.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// Auth resolves the X-Token header and stashes the user id in the context.
// Requests without a live session are rejected with the Unauthorized body.
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c.Request.Context(), c.GetHeader("X-Token"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth, or "" outside it.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
