package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/cache"
	"github.com/shashiranjanraj/maison/pkg/logger"
	"github.com/shashiranjanraj/maison/pkg/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	trendingCacheKey = "catalog:trending"
	trendingCacheTTL = 5 * time.Minute
	trendingLimit    = 4
)

// CatalogService serves the product catalogue and its admin mutations.
type CatalogService struct {
	products *repositories.ProductRepository
	reviews  *repositories.ReviewRepository
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		products: repositories.NewProductRepository(db),
		reviews:  repositories.NewReviewRepository(db),
	}
}

// List returns products matching the filters.
func (s *CatalogService) List(q repositories.CatalogQuery) ([]models.Product, error) {
	products, err := s.products.List(q)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return products, nil
}

// ProductDetail is a product plus its aggregate rating.
type ProductDetail struct {
	models.Product
	Rating repositories.RatingSummary `json:"rating"`
}

// Get returns one product with its rating summary.
func (s *CatalogService) Get(id uint) (ProductDetail, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductDetail{}, apperr.NotFound("Product")
	}
	if err != nil {
		return ProductDetail{}, apperr.Internal(err)
	}

	summary, err := s.reviews.Summary(id)
	if err != nil {
		return ProductDetail{}, apperr.Internal(err)
	}

	return ProductDetail{Product: product, Rating: summary}, nil
}

// Categories lists the filterable categories, with the synthetic "All"
// entry first.
func (s *CatalogService) Categories() ([]string, error) {
	categories, err := s.products.Categories()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return append([]string{"All"}, categories...), nil
}

// Trending returns the most-carted products, served from Redis when the
// cached ranking is still fresh.
func (s *CatalogService) Trending() ([]repositories.TrendingProduct, error) {
	var cached []repositories.TrendingProduct
	if cache.Get(trendingCacheKey, &cached) {
		return cached, nil
	}

	trending, err := s.products.Trending(trendingLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := cache.Set(trendingCacheKey, trending, trendingCacheTTL); err != nil {
		logger.Warn("catalog: trending cache write failed", "error", err.Error())
	}

	return trending, nil
}

// ProductInput is the admin payload for creating or updating a product.
type ProductInput struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"nullable,max=5000"`
	Price       string `json:"price"       validate:"required"`
	Image       string `json:"image"       validate:"nullable,max=512"`
	Category    string `json:"category"    validate:"required,max=100"`
	Stock       int    `json:"stock"       validate:"nullable,gte=0"`
}

func (in ProductInput) apply(p *models.Product) error {
	price, err := parsePrice(in.Price)
	if err != nil {
		return err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = price
	p.Image = in.Image
	p.Category = in.Category
	p.Stock = in.Stock
	return nil
}

// Create adds a product to the catalogue.
func (s *CatalogService) Create(in ProductInput) (models.Product, error) {
	var product models.Product
	if err := in.apply(&product); err != nil {
		return models.Product{}, err
	}

	if err := s.products.Create(&product); err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	s.invalidateTrending()
	logger.Info("product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// Update replaces a product's fields.
func (s *CatalogService) Update(id uint, in ProductInput) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apperr.NotFound("Product")
	}
	if err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	if err := in.apply(&product); err != nil {
		return models.Product{}, err
	}

	if err := s.products.Update(&product); err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	s.invalidateTrending()
	return product, nil
}

// Delete removes a product from the catalogue.
func (s *CatalogService) Delete(id uint) error {
	if _, err := s.products.FindByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Product")
	} else if err != nil {
		return apperr.Internal(err)
	}

	if err := s.products.Delete(id); err != nil {
		return apperr.Internal(err)
	}

	s.invalidateTrending()
	return nil
}

// UploadImage stores a product image on the configured disk and points
// the product at its public URL.
func (s *CatalogService) UploadImage(id uint, filename string, r io.Reader) (models.Product, error) {
	product, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apperr.NotFound("Product")
	}
	if err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	path := fmt.Sprintf("products/%d/%s", product.ID, filename)
	if err := storage.PutStream(path, r); err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	product.Image = storage.URL(path)
	if err := s.products.Update(&product); err != nil {
		return models.Product{}, apperr.Internal(err)
	}

	return product, nil
}

// parsePrice parses a money string into a two-decimal-place amount.
// Prices arrive as strings so client float formatting never corrupts them.
func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.Validation("Price must be a valid decimal number")
	}
	if price.IsNegative() {
		return decimal.Zero, apperr.Validation("Price must not be negative")
	}
	return price.Round(2), nil
}

func (s *CatalogService) invalidateTrending() {
	if err := cache.Forget(trendingCacheKey); err != nil {
		logger.Warn("catalog: trending cache invalidation failed", "error", err.Error())
	}
}
