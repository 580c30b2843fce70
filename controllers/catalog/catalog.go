package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := []models.Product{}
		if err := db.Where("is_active = ?", true).
			Order("id DESC").
			Find(&products).Error; err != nil {
			logger.Log.Error("products fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/services?category=Hair
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := []models.Service{}

		query := db.Where("is_active = ?", true)
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category).Order("id DESC")
		} else {
			query = query.Order("category, name")
		}

		if err := query.Find(&services).Error; err != nil {
			logger.Log.Error("services fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// GET /api/team?role=Stylist
func GetTeam(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		members := []models.TeamMember{}

		query := db.Where("is_active = ?", true)
		if role := c.Query("role"); role != "" {
			query = query.Where("role = ?", role)
		}

		if err := query.Order("name").Find(&members).Error; err != nil {
			logger.Log.Error("team fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team"})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

// GET /api/payment-qr returns the UPI code shown on the checkout page.
func GetPaymentQR(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var qr models.PaymentQR
		if err := db.Order("id DESC").First(&qr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No payment QR configured"})
				return
			}
			logger.Log.Error("payment qr fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment QR"})
			return
		}
		c.JSON(http.StatusOK, qr)
	}
}

// GET /api/health
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
