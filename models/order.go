package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the item
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// Order is a write-once snapshot of a cart at placement time. Later product
// price changes never alter a placed order.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        *uint           `gorm:"index" json:"user_id,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	PaymentMethod string          `gorm:"default:'COD'" json:"payment_method"` // e.g. "card", "COD"
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"` // product price at order time
}
