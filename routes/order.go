package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/abhijeetsoni22/store-api/controllers/order"
	"github.com/abhijeetsoni22/store-api/middleware"
)

// SetupOrderRoutes registers the order endpoints. Both require a token.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("/create", orderControllers.CreateOrderHandler(db))
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
	}
}
