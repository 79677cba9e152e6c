package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the store, cart, order
// and auth route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupStoreRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
}
