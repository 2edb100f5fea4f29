package services

import (
	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/collection"
	"github.com/shashiranjanraj/maison/pkg/logger"
	"github.com/shashiranjanraj/maison/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService converts a cart into an order atomically.
type CheckoutService struct {
	db       *gorm.DB
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{
		db:       db,
		carts:    repositories.NewCartRepository(db),
		products: repositories.NewProductRepository(db),
		orders:   repositories.NewOrderRepository(db),
	}
}

// Checkout places an order from the user's cart in a single transaction:
// read the cart, decrement stock per line with a guarded update, snapshot
// name and price into order items, and clear the cart. Any line with too
// little stock rolls the whole order back; no partial orders exist.
func (s *CheckoutService) Checkout(userID uint) (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items, err := s.carts.ItemsTx(tx, userID)
		if err != nil {
			return apperr.Internal(err)
		}
		// Lines whose product left the catalogue are skipped, matching
		// the cart view.
		items = collection.Filter(items, func(item models.CartItem) bool {
			return item.Product.ID != 0
		})
		if len(items) == 0 {
			return apperr.EmptyCart()
		}

		total := decimal.Zero
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			// Guarded decrement: succeeds only while stock covers the
			// line, so concurrent checkouts cannot oversell.
			affected, err := s.products.DecrementStock(tx, item.ProductID, item.Quantity)
			if err != nil {
				return apperr.Internal(err)
			}
			if affected == 0 {
				return apperr.InsufficientStock(item.Product.Name)
			}

			lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			total = total.Add(lineTotal)

			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{UserID: userID, Total: total, Items: orderItems}
		if err := s.orders.CreateTx(tx, &order); err != nil {
			return apperr.Internal(err)
		}

		if err := s.carts.ClearTx(tx, userID); err != nil {
			return apperr.Internal(err)
		}

		return nil
	})

	if err != nil {
		metrics.RecordCheckout(checkoutStatus(err), 0)
		return models.Order{}, err
	}

	value, _ := order.Total.Float64()
	metrics.RecordCheckout("success", value)
	logger.Info("checkout complete",
		"user_id", userID,
		"order_id", order.ID,
		"total", order.Total.String(),
		"lines", len(order.Items),
	)

	return order, nil
}

func checkoutStatus(err error) string {
	switch {
	case apperr.Is(err, apperr.KindEmptyCart):
		return "empty_cart"
	case apperr.Is(err, apperr.KindInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}
