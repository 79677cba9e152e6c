package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/abhijeetsoni22/store-api/controllers/cart"
	"github.com/abhijeetsoni22/store-api/middleware"
)

// SetupCartRoutes registers the cart endpoints. Add and clear work for both
// anonymous sessions and authenticated users; the rest require a token.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	{
		cart.POST("/add", middleware.Identify, cartControllers.AddToCart(db))
		cart.POST("/clear", middleware.Identify, cartControllers.ClearCart(db))

		cart.GET("", middleware.ValidateToken, cartControllers.GetCart(db))
		cart.POST("/update", middleware.ValidateToken, cartControllers.UpdateCartItem(db))
		cart.POST("/remove", middleware.ValidateToken, cartControllers.RemoveCartItem(db))
	}
}
