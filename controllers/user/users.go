package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/auth"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/users/signup
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Email = strings.TrimSpace(input.Email)
		if input.Name == "" || input.Email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Error("signup lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			logger.Log.Error("password hash failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		user := models.User{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Log.Error("signup insert failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}

		token, err := auth.IssueUserToken(user.ID)
		if err != nil {
			logger.Log.Error("token issue failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			return
		}
		auth.SetAuthCookie(c, auth.UserCookieName, token)

		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": user.ID})
	}
}

// POST /api/users/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		var user models.User
		err := db.Where("email = ? AND is_active = ?", input.Email, true).First(&user).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Log.Error("login lookup failed", "error", err)
			}
			// Unknown email and bad password look identical to the caller.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login"})
			return
		}

		if !auth.CheckPassword(input.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login"})
			return
		}

		token, err := auth.IssueUserToken(user.ID)
		if err != nil {
			logger.Log.Error("token issue failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		auth.SetAuthCookie(c, auth.UserCookieName, token)

		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// POST /api/users/logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.ClearAuthCookie(c, auth.UserCookieName)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GET /api/me never fails; pages use it to toggle login state.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.UserCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusOK, gin.H{"loggedIn": false})
			return
		}
		userID, err := auth.ParseUserToken(tokenString)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"loggedIn": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"loggedIn": true, "userId": userID})
	}
}
