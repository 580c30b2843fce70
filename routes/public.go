package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/vsingh23cs-cell/doxa-salon-management/controllers/admin"
	appointmentControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/appointment"
	catalogControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/catalog"
	userControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/user"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything reachable without a session.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/health", catalogControllers.Health())

		// ─────────── Catalog ───────────
		api.GET("/products", catalogControllers.GetProducts(db))
		api.GET("/services", catalogControllers.GetServices(db))
		api.GET("/team", catalogControllers.GetTeam(db))
		api.GET("/payment-qr", catalogControllers.GetPaymentQR(db))

		// ─────────── Booking ───────────
		api.POST("/appointments", appointmentControllers.BookAppointment(db))

		// ─────────── Customer auth ───────────
		api.POST("/users/signup", userControllers.Signup(db))
		api.POST("/users/login", userControllers.Login(db))
		api.POST("/users/logout", userControllers.Logout())
		api.GET("/me", userControllers.Me())

		// ─────────── Admin auth ───────────
		api.POST("/admin/login", adminController.Login(db))
		api.POST("/admin/logout", adminController.Logout())
		api.GET("/admin/me", adminController.Me())
	}
}
