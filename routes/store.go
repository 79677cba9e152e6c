package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/abhijeetsoni22/store-api/controllers/product"
)

// SetupStoreRoutes registers the public catalog endpoints.
func SetupStoreRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/products", productcontroller.GetProducts(db))
	api.GET("/products/:id", productcontroller.GetProductByID(db))
	api.GET("/categories", productcontroller.GetCategories(db))
}
