package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	cartControllers "github.com/abhijeetsoni22/store-api/controllers/cart"
	"github.com/abhijeetsoni22/store-api/middleware"
	"github.com/abhijeetsoni22/store-api/models"
)

type CreateOrderRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	PaymentMethod string `json:"payment_method"`
}

var (
	ErrCartEmpty    = errors.New("cart is empty")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// validPhone accepts only all-digit numbers of 10 to 15 characters.
func validPhone(phone string) bool {
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// PlaceOrder snapshots the caller's cart into an immutable order and empties
// the cart, all inside one transaction. The order total and item prices are
// taken from the product prices at placement time; later price changes never
// touch a placed order.
func PlaceOrder(db *gorm.DB, identity middleware.Identity, req CreateOrderRequest) (uint, error) {
	if !validPhone(req.Phone) {
		return 0, ErrInvalidPhone
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartControllers.ResolveCart(tx, identity)
		if err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.CartID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))
		for _, item := range items {
			// Lock each product row so the snapshot price cannot shift
			// mid-transaction. SQLite has no row locks; its write
			// transaction already serializes.
			query := tx
			if tx.Dialector.Name() == "postgres" {
				query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
			}

			var product models.Product
			if err := query.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order := models.Order{
			UserID:        identity.UserID,
			Items:         orderItems,
			TotalAmount:   total,
			Name:          req.Name,
			Address:       req.Address,
			Phone:         req.Phone,
			PaymentMethod: paymentMethod,
			Status:        models.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	return orderID, err
}

// POST /api/orders/create
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderID, err := PlaceOrder(db, middleware.IdentityFrom(c), req)
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, gin.H{
				"message":  "Order created successfully!",
				"order_id": orderID,
			})
		case errors.Is(err, ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number."})
		case errors.Is(err, ErrCartEmpty):
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
		default:
			log.Printf("❌ Order creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error during order creation."})
		}
	}
}

// GET /api/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		if identity.UserID == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", *identity.UserID).
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
