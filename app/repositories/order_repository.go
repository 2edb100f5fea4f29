package repositories

import (
	"github.com/shashiranjanraj/maison/app/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateTx persists an order and its items inside an existing
// transaction. GORM cascades the Items association on create.
func (r *OrderRepository) CreateTx(tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

// ForUser returns a user's orders with items, newest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// FindForUser returns one of a user's orders by id. The user scoping
// stops one customer reading another's order.
func (r *OrderRepository) FindForUser(userID, orderID uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	return order, err
}

// All returns every order with items and buyer, newest first. Admin only.
func (r *OrderRepository) All() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Preload("User").
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}
