package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type UpdateStatusInput struct {
	Status string `json:"status"`
}

// mapOrderStatus rejects everything outside the order lifecycle. Appointment
// statuses have their own mapper; the two sets must never mix.
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch status {
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusApproved):
		return models.OrderStatusApproved, nil
	case string(models.OrderStatusRejected):
		return models.OrderStatusRejected, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// GET /api/admin/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := db.Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			logger.Log.Error("admin orders fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /api/admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		status, err := mapOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			logger.Log.Error("order status update failed", "error", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
	}
}
