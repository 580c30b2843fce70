package adminController

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type ServiceInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"is_active"` // omitted means active
}

func (in *ServiceInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" || in.Price <= 0 {
		return errors.New("name, category and a positive price are required")
	}
	return nil
}

// GET /api/admin/services includes inactive rows, unlike the public list.
func GetServices(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := []models.Service{}
		if err := db.Order("category, name").Find(&services).Error; err != nil {
			logger.Log.Error("admin services fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

// POST /api/admin/services
func CreateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		service := models.Service{
			Name:        input.Name,
			Category:    input.Category,
			Price:       input.Price,
			DurationMin: input.DurationMin,
			Description: input.Description,
			IsActive:    isActive,
		}
		if err := db.Create(&service).Error; err != nil {
			logger.Log.Error("service insert failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
			return
		}

		c.JSON(http.StatusOK, service)
	}
}

// PUT /api/admin/services/:id replaces all mutable fields.
func UpdateService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var service models.Service
		if err := db.First(&service, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
				return
			}
			logger.Log.Error("service fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}

		var input ServiceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		if err := input.validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		service.Name = input.Name
		service.Category = input.Category
		service.Price = input.Price
		service.DurationMin = input.DurationMin
		service.Description = input.Description
		if input.IsActive != nil {
			service.IsActive = *input.IsActive
		}

		if err := db.Save(&service).Error; err != nil {
			logger.Log.Error("service update failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update service"})
			return
		}

		c.JSON(http.StatusOK, service)
	}
}

// DELETE /api/admin/services/:id is unconditional; appointments keep their
// frozen copy of the service name and category.
func DeleteService(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.Service{}, "id = ?", id).Error; err != nil {
			logger.Log.Error("service delete failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
