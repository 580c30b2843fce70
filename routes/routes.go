package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog, booking and auth routes (no middleware)
	SetupPublicRoutes(r, db)

	// Customer routes (session-cookie protected)
	SetupUserRoutes(r, db)

	// Admin back-office routes (admin-cookie protected)
	SetupAdminRoutes(r, db)
}
