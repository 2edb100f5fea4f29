package repositories

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"gorm.io/gorm"
)

// CartRepository handles database operations for cart lines.
type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Items returns a user's cart lines with their products preloaded.
func (r *CartRepository) Items(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// ItemsTx is Items inside an existing transaction, used by checkout so
// the read and the stock writes see the same state.
func (r *CartRepository) ItemsTx(tx *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := tx.Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// Find returns the user's cart line for a product, if any.
func (r *CartRepository) Find(userID, productID uint) (models.CartItem, error) {
	var item models.CartItem
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error
	return item, err
}

// Add inserts a cart line, or bumps the quantity when the product is
// already in the cart.
func (r *CartRepository) Add(userID, productID uint, qty int) (models.CartItem, error) {
	item, err := r.Find(userID, productID)
	switch {
	case err == nil:
		item.Quantity += qty
		return item, r.db.Save(&item).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{UserID: userID, ProductID: productID, Quantity: qty}
		return item, r.db.Create(&item).Error
	default:
		return item, err
	}
}

// SetQuantity replaces a line's quantity.
func (r *CartRepository) SetQuantity(item *models.CartItem, qty int) error {
	item.Quantity = qty
	return r.db.Save(item).Error
}

// Remove deletes a user's cart line for a product, reporting how many
// rows went away so callers can distinguish a miss.
func (r *CartRepository) Remove(userID, productID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}

// ClearTx empties a user's cart inside an existing transaction.
func (r *CartRepository) ClearTx(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
