package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a completed checkout. Total is the sum of its items' price
// snapshots; it never changes after the order is created.
type Order struct {
	gorm.Model
	UserID uint            `gorm:"not null;index" json:"userId"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	User  User        `gorm:"foreignKey:UserID" json:"-"`
}

// OrderItem snapshots one purchased line. Name and Price are copied from
// the product at checkout time so later catalogue edits leave order
// history intact.
type OrderItem struct {
	gorm.Model
	OrderID   uint            `gorm:"not null;index" json:"orderId"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}
