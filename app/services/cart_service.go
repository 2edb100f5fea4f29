package services

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/collection"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService manages a user's cart lines.
type CartService struct {
	carts    *repositories.CartRepository
	products *repositories.ProductRepository
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// CartLine is one cart row shaped for the API: the live product joined
// with the requested quantity and the line total.
type CartLine struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// Cart is the full cart view.
type Cart struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// View returns the user's cart with live prices and the running total.
func (s *CartService) View(userID uint) (Cart, error) {
	items, err := s.carts.Items(userID)
	if err != nil {
		return Cart{}, apperr.Internal(err)
	}

	// A line whose product was removed from the catalogue no longer
	// renders; its preload comes back zero-valued.
	items = collection.Filter(items, func(item models.CartItem) bool {
		return item.Product.ID != 0
	})

	lines := collection.Map(items, func(item models.CartItem) CartLine {
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		return CartLine{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Image:     item.Product.Image,
			Stock:     item.Product.Stock,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		}
	})

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}

	return Cart{Items: lines, Total: total}, nil
}

// Add puts qty units of a product in the cart, merging with an existing
// line. The resulting quantity may not exceed the product's stock.
func (s *CartService) Add(userID, productID uint, qty int) (Cart, error) {
	if qty < 1 {
		qty = 1
	}

	product, err := s.products.FindByID(productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, apperr.NotFound("Product")
	}
	if err != nil {
		return Cart{}, apperr.Internal(err)
	}

	existing := 0
	if line, err := s.carts.Find(userID, productID); err == nil {
		existing = line.Quantity
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, apperr.Internal(err)
	}

	if existing+qty > product.Stock {
		return Cart{}, apperr.InsufficientStock(product.Name)
	}

	if _, err := s.carts.Add(userID, productID, qty); err != nil {
		return Cart{}, apperr.Internal(err)
	}

	return s.View(userID)
}

// SetQuantity replaces a line's quantity. A quantity below one removes
// the line.
func (s *CartService) SetQuantity(userID, productID uint, qty int) (Cart, error) {
	if qty < 1 {
		return s.Remove(userID, productID)
	}

	line, err := s.carts.Find(userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Cart{}, apperr.NotFound("Cart item")
	}
	if err != nil {
		return Cart{}, apperr.Internal(err)
	}

	product, err := s.products.FindByID(productID)
	if err != nil {
		return Cart{}, apperr.Internal(err)
	}
	if qty > product.Stock {
		return Cart{}, apperr.InsufficientStock(product.Name)
	}

	if err := s.carts.SetQuantity(&line, qty); err != nil {
		return Cart{}, apperr.Internal(err)
	}

	return s.View(userID)
}

// Remove deletes a product's line from the cart. The line must exist;
// another user's lines are invisible here, so there is no cross-user
// deletion.
func (s *CartService) Remove(userID, productID uint) (Cart, error) {
	affected, err := s.carts.Remove(userID, productID)
	if err != nil {
		return Cart{}, apperr.Internal(err)
	}
	if affected == 0 {
		return Cart{}, apperr.NotFound("Cart item")
	}
	return s.View(userID)
}
