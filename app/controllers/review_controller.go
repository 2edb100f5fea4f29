package controllers

import (
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// ReviewController exposes product reviews.
type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{service: services.NewReviewService(db)}
}

// Index lists a product's reviews with the aggregate rating.
func (c *ReviewController) Index(cx *ctx.Context) {
	productID, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	reviews, err := c.service.ForProduct(productID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(reviews)
}

// Store posts a review for a product.
func (c *ReviewController) Store(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	productID, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Product")
		return
	}

	var in services.ReviewInput
	if !cx.BindJSON(&in) {
		return
	}

	review, err := c.service.Create(ident.ID, productID, in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(review)
}

// Destroy deletes the caller's own review.
func (c *ReviewController) Destroy(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	reviewID, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Review")
		return
	}

	if err := c.service.Delete(ident.ID, reviewID); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(map[string]string{"message": "Review deleted"})
}
