package repositories

import (
	"github.com/shashiranjanraj/maison/app/models"
	"gorm.io/gorm"
)

// RatingSummary is the aggregate rating for a product.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ReviewRepository handles database operations for reviews.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ForProduct returns a product's reviews, newest first, with the
// reviewer preloaded for display names.
func (r *ReviewRepository) ForProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").
		Where("product_id = ?", productID).
		Order("id DESC").
		Find(&reviews).Error
	return reviews, err
}

// FindByID returns one review.
func (r *ReviewRepository) FindByID(id uint) (models.Review, error) {
	var review models.Review
	err := r.db.First(&review, id).Error
	return review, err
}

// Create persists a review.
func (r *ReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Delete removes a review.
func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// Summary computes the average rating and review count for a product.
// A product with no reviews has Average 0 and Count 0.
func (r *ReviewRepository) Summary(productID uint) (RatingSummary, error) {
	var summary RatingSummary
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	return summary, err
}
