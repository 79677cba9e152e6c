package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart belongs to exactly one identity: an authenticated user or an anonymous
// session. The unique indexes enforce ONE cart per identity even under
// concurrent get-or-create.
type Cart struct {
	CartID     uint       `gorm:"primaryKey" json:"cart_id"`
	UserID     *uint      `gorm:"uniqueIndex" json:"user_id,omitempty"`
	SessionKey *string    `gorm:"uniqueIndex" json:"session_key,omitempty"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"cart_id"` // Faster queries
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int       `gorm:"not null" json:"quantity"` // always > 0; zero/negative updates delete the row
	AddedAt   time.Time `json:"added_at"`
}

// Subtotal is derived from the current product price and is never stored.
// The item's Product must be loaded.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the subtotals of the loaded items.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
