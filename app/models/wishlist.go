package models

import "time"

// WishlistItem marks a product a user wants to come back to. At most one
// row per (user, product). Entries are removed outright, not
// soft-deleted, so the unique index never blocks re-adding.
type WishlistItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (WishlistItem) TableName() string { return "wishlist_items" }
