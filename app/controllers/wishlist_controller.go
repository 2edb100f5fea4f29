package controllers

import (
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// WishlistController exposes the authenticated wishlist.
type WishlistController struct {
	service *services.WishlistService
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{service: services.NewWishlistService(db)}
}

// Index lists the caller's saved products.
func (c *WishlistController) Index(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	products, err := c.service.List(ident.ID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(products)
}

type wishlistInput struct {
	ProductID uint `json:"productId" validate:"required"`
}

// Store saves a product to the wishlist.
func (c *WishlistController) Store(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	var in wishlistInput
	if !cx.BindJSON(&in) {
		return
	}

	if err := c.service.Add(ident.ID, in.ProductID); err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(map[string]string{"message": "Added to wishlist"})
}

// Destroy drops a product from the wishlist.
func (c *WishlistController) Destroy(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	productID, ok := cx.ParamUint("productId")
	if !ok {
		cx.NotFound("Product")
		return
	}

	if err := c.service.Remove(ident.ID, productID); err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(map[string]string{"message": "Removed from wishlist"})
}

// Check reports whether a product is on the caller's wishlist.
func (c *WishlistController) Check(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	productID, ok := cx.ParamUint("productId")
	if !ok {
		cx.NotFound("Product")
		return
	}

	contains, err := c.service.Contains(ident.ID, productID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(map[string]bool{"inWishlist": contains})
}
