package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/auth"
)

// RequireUser resolves the customer principal from the session cookie and
// attaches it to the request context. Any failure short-circuits with the
// same generic message.
func RequireUser(c *gin.Context) {
	tokenString, err := c.Cookie(auth.UserCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		c.Abort()
		return
	}

	userID, err := auth.ParseUserToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

// RequireAdmin is the admin counterpart of RequireUser. A customer token is
// never accepted here, and vice versa.
func RequireAdmin(c *gin.Context) {
	tokenString, err := c.Cookie(auth.AdminCookieName)
	if err != nil || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not logged in"})
		c.Abort()
		return
	}

	adminID, err := auth.ParseAdminToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not logged in"})
		c.Abort()
		return
	}

	c.Set("admin_id", adminID)
	c.Next()
}
