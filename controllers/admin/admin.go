package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/auth"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		var admin models.Admin
		err := db.Where("username = ?", input.Username).First(&admin).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Log.Error("admin lookup failed", "error", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin"})
			return
		}

		if !auth.CheckPassword(input.Password, admin.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin"})
			return
		}

		token, err := auth.IssueAdminToken(admin.ID)
		if err != nil {
			logger.Log.Error("admin token issue failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin login failed"})
			return
		}
		auth.SetAuthCookie(c, auth.AdminCookieName, token)

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /api/admin/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c, auth.AdminCookieName)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GET /api/admin/me
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.AdminCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusOK, gin.H{"loggedIn": false})
			return
		}
		adminID, err := auth.ParseAdminToken(tokenString)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"loggedIn": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loggedIn": true, "adminId": adminID})
	}
}
