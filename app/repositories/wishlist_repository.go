package repositories

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"gorm.io/gorm"
)

// WishlistRepository handles database operations for wishlist entries.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// ForUser returns a user's wishlist with products preloaded.
func (r *WishlistRepository) ForUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Add inserts a wishlist entry.
func (r *WishlistRepository) Add(userID, productID uint) (models.WishlistItem, error) {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	err := r.db.Create(&item).Error
	return item, err
}

// Remove deletes a user's wishlist entry for a product, reporting how
// many rows went away so callers can distinguish a miss.
func (r *WishlistRepository) Remove(userID, productID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}

// Contains reports whether the product is on the user's wishlist.
func (r *WishlistRepository) Contains(userID, productID uint) (bool, error) {
	var item models.WishlistItem
	err := r.db.Select("id").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
