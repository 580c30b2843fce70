package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/vsingh23cs-cell/doxa-salon-management/controllers/admin"
	orderControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/order"
	"github.com/vsingh23cs-cell/doxa-salon-management/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints behind the admin
// session middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		// ─────────── Orders ───────────
		adminGroup.GET("/orders", adminController.GetOrders(db))
		adminGroup.PATCH("/orders/:id/status", adminController.UpdateOrderStatus(db))
		adminGroup.GET("/orders/export-excel", adminController.ExportOrdersToExcel(db))
		adminGroup.GET("/orders/:id/invoice", adminController.OrderInvoicePDF(db))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

		// ─────────── Appointments ───────────
		adminGroup.GET("/appointments", adminController.GetAppointments(db))
		adminGroup.PATCH("/appointments/:id/status", adminController.UpdateAppointmentStatus(db))

		// ─────────── Service Management ───────────
		serviceAdmin := adminGroup.Group("/services")
		{
			serviceAdmin.GET("", adminController.GetServices(db))
			serviceAdmin.POST("", adminController.CreateService(db))
			serviceAdmin.PUT("/:id", adminController.UpdateService(db))
			serviceAdmin.DELETE("/:id", adminController.DeleteService(db))
		}

		// ─────────── Payment QR ───────────
		adminGroup.POST("/payment-qr", adminController.CreatePaymentQR(db))
	}
}
