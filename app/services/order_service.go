package services

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"gorm.io/gorm"
)

// OrderService reads order history for customers and admins.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository(db)}
}

// ForUser returns the caller's orders, newest first.
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ForUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// Get returns one of the caller's orders. Another user's order id comes
// back as not found rather than forbidden, so ids cannot be probed.
func (s *OrderService) Get(userID, orderID uint) (models.Order, error) {
	order, err := s.orders.FindForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, apperr.NotFound("Order")
	}
	if err != nil {
		return models.Order{}, apperr.Internal(err)
	}
	return order, nil
}

// AdminOrder is an order with the buyer's username for the back office.
type AdminOrder struct {
	models.Order
	Username string `json:"username"`
}

// All returns every order in the store, newest first. Admin only.
func (s *OrderService) All() ([]AdminOrder, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]AdminOrder, len(orders))
	for i, o := range orders {
		out[i] = AdminOrder{Order: o, Username: o.User.Username}
	}
	return out, nil
}
