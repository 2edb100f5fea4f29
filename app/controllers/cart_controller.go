package controllers

import (
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// CartController exposes the authenticated cart and checkout.
type CartController struct {
	cart     *services.CartService
	checkout *services.CheckoutService
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{
		cart:     services.NewCartService(db),
		checkout: services.NewCheckoutService(db),
	}
}

// Show returns the caller's cart with live prices and the total.
func (c *CartController) Show(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	cart, err := c.cart.View(ident.ID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(cart)
}

type addToCartInput struct {
	ProductID uint `json:"productId" validate:"required"`
	Quantity  int  `json:"quantity"  validate:"nullable,gte=1"`
}

// Add puts a product in the cart, merging quantities for repeats.
func (c *CartController) Add(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	var in addToCartInput
	if !cx.BindJSON(&in) {
		return
	}

	cart, err := c.cart.Add(ident.ID, in.ProductID, in.Quantity)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(cart)
}

type updateQuantityInput struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateItem replaces a line's quantity; zero removes the line.
func (c *CartController) UpdateItem(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	productID, ok := cx.ParamUint("productId")
	if !ok {
		cx.NotFound("Cart item")
		return
	}

	var in updateQuantityInput
	if !cx.BindJSON(&in) {
		return
	}

	cart, err := c.cart.SetQuantity(ident.ID, productID, in.Quantity)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(cart)
}

// Remove deletes a product's line from the cart.
func (c *CartController) Remove(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	productID, ok := cx.ParamUint("productId")
	if !ok {
		cx.NotFound("Cart item")
		return
	}

	cart, err := c.cart.Remove(ident.ID, productID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(cart)
}

// Checkout places an order from the cart.
func (c *CartController) Checkout(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	order, err := c.checkout.Checkout(ident.ID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(order)
}
