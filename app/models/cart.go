package models

import "time"

// CartItem is one product line in a user's cart. A user has at most one
// line per product; adding the same product again bumps the quantity.
// Lines are removed outright, not soft-deleted: a dead row would keep
// occupying the (user, product) unique index and block re-adding.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (CartItem) TableName() string { return "cart_items" }
