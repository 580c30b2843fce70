package appointmentControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

type BookingInput struct {
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	ServiceID  uint   `json:"service_id"`
	ApptDate   string `json:"appt_date"`
	ApptTime   string `json:"appt_time"`
	Notes      string `json:"notes"`
}

// POST /api/appointments is a public booking endpoint, no login required.
func BookAppointment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		input.ClientName = strings.TrimSpace(input.ClientName)
		input.Phone = strings.TrimSpace(input.Phone)
		if input.ClientName == "" || input.Phone == "" || input.ServiceID == 0 ||
			input.ApptDate == "" || input.ApptTime == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}

		var service models.Service
		err := db.Where("id = ? AND is_active = ?", input.ServiceID, true).First(&service).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service"})
				return
			}
			logger.Log.Error("service lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
			return
		}

		appt := models.Appointment{
			ClientName: input.ClientName,
			Phone:      input.Phone,
			Email:      strings.TrimSpace(input.Email),
			ServiceID:  service.ID,
			// Frozen at booking time; service edits don't rewrite history.
			ServiceName:     service.Name,
			ServiceCategory: service.Category,
			ApptDate:        input.ApptDate,
			ApptTime:        input.ApptTime,
			Notes:           strings.TrimSpace(input.Notes),
			Status:          models.AppointmentStatusPending,
		}
		if err := db.Create(&appt).Error; err != nil {
			logger.Log.Error("appointment insert failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"ok": true, "id": appt.ID, "status": appt.Status})
	}
}
