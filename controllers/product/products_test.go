package productcontroller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abhijeetsoni22/store-api/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:product-%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/products", GetProducts(db))
	r.GET("/api/products/:id", GetProductByID(db))
	r.GET("/api/categories", GetCategories(db))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = "shop.example.com"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type productResp struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    *string         `json:"image"`
	Category models.Category `json:"category"`
}

func TestGetProductsWithCategoryAndImageURL(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db)

	category := models.Category{Name: "Electronics"}
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&models.Product{
		Name:       "Headphones",
		Price:      decimal.RequireFromString("79.99"),
		Image:      "/uploads/headphones.jpg",
		CategoryID: category.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name:       "Cable",
		Price:      decimal.RequireFromString("4.99"),
		CategoryID: category.ID,
	}).Error)

	w := get(r, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)

	var products []productResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)

	assert.Equal(t, "Headphones", products[0].Name)
	assert.Equal(t, "Electronics", products[0].Category.Name)
	require.NotNil(t, products[0].Image)
	assert.Equal(t, "http://shop.example.com/uploads/headphones.jpg", *products[0].Image)

	// No image stored serializes as null, not an empty string.
	assert.Nil(t, products[1].Image)
}

func TestGetProductByID(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db)

	category := models.Category{Name: "Books"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{Name: "Novel", Price: decimal.RequireFromString("12.50"), CategoryID: category.ID}
	require.NoError(t, db.Create(&product).Error)

	w := get(r, fmt.Sprintf("/api/products/%d", product.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp productResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, product.ID, resp.ID)
	assert.True(t, decimal.RequireFromString("12.50").Equal(resp.Price))
	assert.Equal(t, "Books", resp.Category.Name)
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db)

	w := get(r, "/api/products/9999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")

	w = get(r, "/api/products/not-a-number")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategories(t *testing.T) {
	db := setupDB(t)
	r := setupRouter(db)

	require.NoError(t, db.Create(&models.Category{Name: "Toys"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Games"}).Error)

	w := get(r, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, "Toys", categories[0].Name)
}

func TestImageURLPrefersBaseURL(t *testing.T) {
	t.Setenv("BASE_URL", "https://cdn.example.com")
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/products", nil)

	assert.Equal(t, "https://cdn.example.com/uploads/a.jpg", ImageURL(c, "/uploads/a.jpg"))
	assert.Nil(t, ImageURL(c, ""))
	assert.Equal(t, "https://elsewhere.example.com/b.jpg", ImageURL(c, "https://elsewhere.example.com/b.jpg"))
}
