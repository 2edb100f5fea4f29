package services

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/collection"
	"gorm.io/gorm"
)

// WishlistService manages a user's saved products.
type WishlistService struct {
	wishlist *repositories.WishlistRepository
	products *repositories.ProductRepository
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{
		wishlist: repositories.NewWishlistRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// List returns the user's wishlist as full products.
func (s *WishlistService) List(userID uint) ([]models.Product, error) {
	items, err := s.wishlist.ForUser(userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return collection.Map(items, func(i models.WishlistItem) models.Product {
		return i.Product
	}), nil
}

// Add saves a product to the wishlist. Saving the same product twice is
// a conflict.
func (s *WishlistService) Add(userID, productID uint) error {
	if _, err := s.products.FindByID(productID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Product")
	} else if err != nil {
		return apperr.Internal(err)
	}

	if ok, err := s.wishlist.Contains(userID, productID); err != nil {
		return apperr.Internal(err)
	} else if ok {
		return apperr.Conflict("Product is already in your wishlist")
	}

	if _, err := s.wishlist.Add(userID, productID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// Remove drops a product from the wishlist.
func (s *WishlistService) Remove(userID, productID uint) error {
	affected, err := s.wishlist.Remove(userID, productID)
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.NotFound("Wishlist item")
	}
	return nil
}

// Contains reports whether the product is on the user's wishlist.
func (s *WishlistService) Contains(userID, productID uint) (bool, error) {
	ok, err := s.wishlist.Contains(userID, productID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	return ok, nil
}
