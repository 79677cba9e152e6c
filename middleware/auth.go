package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhijeetsoni22/store-api/auth"
)

// ValidateToken guards endpoints that require an authenticated user.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	claims, err := auth.ValidateToken(tokenString, auth.TokenTypeAccess)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Next()
}

// bearerToken reads the Authorization header, with or without the
// "Bearer " prefix.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
