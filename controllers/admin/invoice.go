package adminController

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/vsingh23cs-cell/doxa-salon-management/logger"
	"github.com/vsingh23cs-cell/doxa-salon-management/models"
	"gorm.io/gorm"
)

// GET /api/admin/orders/:id/invoice renders a PDF receipt for an order.
func OrderInvoicePDF(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		err := db.Preload("Items").First(&order, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			logger.Log.Error("invoice order fetch failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()

		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(0, 12, "DOXA Salon - Order Invoice")
		pdf.Ln(14)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Order #%d", order.ID))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Customer: %s (%s)", order.CustomerName, order.Phone))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Address: %s", order.Address))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Status: %s", order.Status))
		pdf.Ln(6)
		pdf.Cell(0, 7, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2006-01-02 15:04")))
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(90, 8, "Item", "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 8, "Qty", "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, "Price", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "Total", "1", 1, "R", false, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, item := range order.Items {
			pdf.CellFormat(90, 8, item.Name, "1", 0, "", false, 0, "")
			pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Qty), "1", 0, "C", false, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.PriceEach), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.PriceEach*float64(item.Qty)), "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(150, 8, "Grand Total", "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 1, "R", false, 0, "")

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-%d.pdf", order.ID))
		c.Header("Content-Type", "application/pdf")

		if err := pdf.Output(c.Writer); err != nil {
			logger.Log.Error("invoice pdf write failed", "error", err)
		}
	}
}
