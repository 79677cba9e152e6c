package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	productcontroller "github.com/abhijeetsoni22/store-api/controllers/product"
	"github.com/abhijeetsoni22/store-api/middleware"
	"github.com/abhijeetsoni22/store-api/models"
)

type AddItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"` // nil means 1; zero or negative deletes the item
}

type RemoveItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ResolveCart returns the single cart for an identity, creating it on first
// use. A creation race is settled by the unique index on the identity column:
// the loser re-fetches the winner's row.
func ResolveCart(db *gorm.DB, identity middleware.Identity) (models.Cart, error) {
	lookup := func() *gorm.DB {
		if identity.UserID != nil {
			return db.Where("user_id = ?", *identity.UserID)
		}
		return db.Where("session_key = ?", identity.SessionKey)
	}

	var cart models.Cart
	err := lookup().First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.Cart{UserID: identity.UserID}
	if identity.UserID == nil {
		key := identity.SessionKey
		cart.SessionKey = &key
	}
	err = db.Create(&cart).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = lookup().First(&cart).Error
	}
	return cart, err
}

// contents serializes the item list and total for a cart.
func contents(c *gin.Context, db *gorm.DB, cart models.Cart) (gin.H, error) {
	var items []models.CartItem
	if err := db.Preload("Product").Where("cart_id = ?", cart.CartID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}

	total := decimal.Zero
	list := make([]gin.H, 0, len(items))
	for _, item := range items {
		total = total.Add(item.Subtotal())
		list = append(list, gin.H{
			"id":       item.Product.ID,
			"name":     item.Product.Name,
			"price":    item.Product.Price,
			"quantity": item.Quantity,
			"image":    productcontroller.ImageURL(c, item.Product.Image),
		})
	}
	return gin.H{"items": list, "total": total}, nil
}

// POST /api/cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		cart, err := ResolveCart(db, middleware.IdentityFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		// Same product twice merges into one row with summed quantity.
		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += input.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		body, err := contents(c, db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := ResolveCart(db, middleware.IdentityFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		body, err := contents(c, db, cart)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// POST /api/cart/update
//
// A missing item reports 200 {"message": "Item not found"} rather than a 404;
// the web client treats it as a no-op refresh.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := ResolveCart(db, middleware.IdentityFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		// A request without a quantity overwrites to 1.
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		// Quantity must stay positive; anything else deletes the row.
		if quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
		} else {
			item.Quantity = quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// POST /api/cart/remove
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RemoveItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := ResolveCart(db, middleware.IdentityFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		// Idempotent: absent items are not an error.
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// POST /api/cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := ResolveCart(db, middleware.IdentityFrom(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
