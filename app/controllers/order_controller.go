package controllers

import (
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"gorm.io/gorm"
)

// OrderController exposes order history for customers and admins.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{service: services.NewOrderService(db)}
}

// Index lists the caller's orders, newest first.
func (c *OrderController) Index(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	orders, err := c.service.ForUser(ident.ID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(orders)
}

// Show returns one of the caller's orders.
func (c *OrderController) Show(cx *ctx.Context) {
	ident, ok := cx.Identity()
	if !ok {
		cx.Unauthorized()
		return
	}

	orderID, ok := cx.ParamUint("id")
	if !ok {
		cx.NotFound("Order")
		return
	}

	order, err := c.service.Get(ident.ID, orderID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(order)
}

// AdminIndex lists every order in the store. Admin only.
func (c *OrderController) AdminIndex(cx *ctx.Context) {
	orders, err := c.service.All()
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(orders)
}
