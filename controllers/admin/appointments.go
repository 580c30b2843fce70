package adminController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

func mapAppointmentStatus(status string) (models.AppointmentStatus, error) {
	switch status {
	case string(models.AppointmentStatusPending):
		return models.AppointmentStatusPending, nil
	case string(models.AppointmentStatusConfirmed):
		return models.AppointmentStatusConfirmed, nil
	case string(models.AppointmentStatusRejected):
		return models.AppointmentStatusRejected, nil
	case string(models.AppointmentStatusCompleted):
		return models.AppointmentStatusCompleted, nil
	default:
		return "", errors.New("invalid appointment status")
	}
}

// GET /api/admin/appointments
func GetAppointments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts := []models.Appointment{}
		if err := db.Order("created_at DESC").Find(&appts).Error; err != nil {
			logger.Log.Error("admin appointments fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}

// PATCH /api/admin/appointments/:id/status
func UpdateAppointmentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		status, err := mapAppointmentStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		result := db.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status)
		if result.Error != nil {
			logger.Log.Error("appointment status update failed", "error", result.Error)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
	}
}
