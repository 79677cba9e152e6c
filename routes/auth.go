package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/abhijeetsoni22/store-api/controllers/user"
)

// SetupAuthRoutes registers registration, login and token refresh. All public.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/register", userControllers.Register(db))
	api.POST("/login", userControllers.Login(db))
	api.POST("/token/refresh", userControllers.RefreshToken())
}
