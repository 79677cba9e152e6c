package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhijeetsoni22/store-api/models"
)

// ImageURL resolves a stored image path to an absolute URL for the current
// request host. Returns nil when the product has no image.
func ImageURL(c *gin.Context, image string) any {
	if image == "" {
		return nil
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	if base := os.Getenv("BASE_URL"); base != "" {
		return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(image, "/")
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, c.Request.Host, strings.TrimPrefix(image, "/"))
}

// Serialize renders a product with its nested category and absolute image URL.
func Serialize(c *gin.Context, p models.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"image":       ImageURL(c, p.Image),
		"category_id": p.CategoryID,
		"category":    p.Category,
	}
}

// GET /api/products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		out := make([]gin.H, 0, len(products))
		for _, p := range products {
			out = append(out, Serialize(c, p))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Category").First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, Serialize(c, product))
	}
}

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("id").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
