package services

import (
	"errors"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/collection"
	"gorm.io/gorm"
)

// ReviewService manages product reviews and rating summaries.
type ReviewService struct {
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{
		reviews:  repositories.NewReviewRepository(db),
		products: repositories.NewProductRepository(db),
	}
}

// ReviewView is a review shaped for the API, with the reviewer's name
// flattened in.
type ReviewView struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// ProductReviews is the review list plus the aggregate rating.
type ProductReviews struct {
	Reviews []ReviewView               `json:"reviews"`
	Rating  repositories.RatingSummary `json:"rating"`
}

// ForProduct returns a product's reviews, newest first.
func (s *ReviewService) ForProduct(productID uint) (ProductReviews, error) {
	if _, err := s.products.FindByID(productID); errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductReviews{}, apperr.NotFound("Product")
	} else if err != nil {
		return ProductReviews{}, apperr.Internal(err)
	}

	reviews, err := s.reviews.ForProduct(productID)
	if err != nil {
		return ProductReviews{}, apperr.Internal(err)
	}

	summary, err := s.reviews.Summary(productID)
	if err != nil {
		return ProductReviews{}, apperr.Internal(err)
	}

	views := collection.Map(reviews, func(r models.Review) ReviewView {
		return ReviewView{
			ID:        r.ID,
			Username:  r.User.Username,
			Rating:    r.Rating,
			Title:     r.Title,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	})

	return ProductReviews{Reviews: views, Rating: summary}, nil
}

// ReviewInput is the payload for posting a review.
type ReviewInput struct {
	Rating  int    `json:"rating"  validate:"required,between=1,5"`
	Title   string `json:"title"   validate:"required,max=255"`
	Comment string `json:"comment" validate:"nullable,max=2000"`
}

// Create posts a review for a product. A user may review the same
// product more than once.
func (s *ReviewService) Create(userID, productID uint, in ReviewInput) (models.Review, error) {
	if _, err := s.products.FindByID(productID); errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, apperr.NotFound("Product")
	} else if err != nil {
		return models.Review{}, apperr.Internal(err)
	}

	review := models.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, apperr.Internal(err)
	}

	return review, nil
}

// Delete removes a review. Only its author may delete it.
func (s *ReviewService) Delete(userID, reviewID uint) error {
	review, err := s.reviews.FindByID(reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Review")
	}
	if err != nil {
		return apperr.Internal(err)
	}

	if review.UserID != userID {
		return apperr.Forbidden("You can only delete your own reviews")
	}

	if err := s.reviews.Delete(review.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
