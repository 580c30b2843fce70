package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/cart"
	orderControllers "github.com/vsingh23cs-cell/doxa-salon-management/controllers/order"
	"github.com/vsingh23cs-cell/doxa-salon-management/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the customer-gated cart and order endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.RequireUser)
	{
		// ─────────── Shopping Cart ───────────
		api.GET("/cart", cartControllers.GetCart(db))
		api.POST("/cart/add", cartControllers.AddCartItem(db))
		api.POST("/cart/update", cartControllers.UpdateCartItem(db))
		api.POST("/cart/remove", cartControllers.RemoveCartItem(db))

		// ─────────── Orders ───────────
		api.POST("/orders", orderControllers.PlaceOrderHandler(db))
		api.GET("/orders", orderControllers.GetMyOrdersHandler(db))
		api.GET("/orders/:id", orderControllers.GetMyOrderHandler(db))
	}
}
