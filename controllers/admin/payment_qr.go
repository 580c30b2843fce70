package adminController

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"github.com/vsingh23cs-cell/doxa-salon-management/storage"
	"gorm.io/gorm"
)

type PaymentQRInput struct {
	UpiID     string `json:"upi_id"`
	PayeeName string `json:"payee_name"`
}

// POST /api/admin/payment-qr
//
// Generates the UPI QR customers scan at checkout and records it as the
// active one. Old images stay on disk; references are never overwritten.
func CreatePaymentQR(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PaymentQRInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
			return
		}
		input.UpiID = strings.TrimSpace(input.UpiID)
		if input.UpiID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "upi_id required"})
			return
		}

		params := url.Values{}
		params.Set("pa", input.UpiID)
		if input.PayeeName != "" {
			params.Set("pn", input.PayeeName)
		}
		params.Set("cu", "INR")
		upiURI := "upi://pay?" + params.Encode()

		png, err := qrcode.Encode(upiURI, qrcode.Medium, 512)
		if err != nil {
			logger.Log.Error("qr encode failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR"})
			return
		}

		dir := storage.UploadDir()
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Log.Error("upload dir create failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR"})
			return
		}
		filename := storage.UniqueName("payment_qr.png")
		if err := os.WriteFile(filepath.Join(dir, filename), png, 0644); err != nil {
			logger.Log.Error("qr write failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR"})
			return
		}

		qr := models.PaymentQR{
			UpiID:     input.UpiID,
			PayeeName: input.PayeeName,
			ImageURL:  fmt.Sprintf("/uploads/%s", filename),
		}
		if err := db.Create(&qr).Error; err != nil {
			logger.Log.Error("payment qr insert failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save QR"})
			return
		}

		c.JSON(http.StatusOK, qr)
	}
}
