package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image      string          `json:"image"` // relative path under /uploads, may be empty
	CategoryID uint            `gorm:"index" json:"category_id"`
	Category   Category        `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
