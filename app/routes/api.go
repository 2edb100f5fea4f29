// Package routes wires every API endpoint to its controller.
package routes

import (
	"github.com/shashiranjanraj/maison/app/controllers"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"github.com/shashiranjanraj/maison/pkg/middleware"
	"github.com/shashiranjanraj/maison/pkg/router"
	"gorm.io/gorm"
)

// RegisterAPI mounts the storefront API under /api.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	productController := controllers.NewProductController(db)
	cartController := controllers.NewCartController(db)
	orderController := controllers.NewOrderController(db)
	reviewController := controllers.NewReviewController(db)
	wishlistController := controllers.NewWishlistController(db)

	api := r.Group("/api")

	api.Get("/health", "health", ctx.Wrap(func(cx *ctx.Context) {
		cx.Success(map[string]string{"status": "ok"})
	}))

	// Auth
	api.Post("/auth/register", "auth.register", ctx.Wrap(authController.Register))
	api.Post("/auth/login", "auth.login", ctx.Wrap(authController.Login))

	// Public catalogue. OptionalAuth attaches an identity when a valid
	// token rides along, so browsing keeps working anonymously.
	api.Get("/products", "products.index", ctx.Wrap(productController.Index), middleware.OptionalAuth)
	api.Get("/products/trending", "products.trending", ctx.Wrap(productController.Trending))
	api.Get("/products/categories", "products.categories", ctx.Wrap(productController.Categories))
	api.Get("/products/{id}", "products.show", ctx.Wrap(productController.Show), middleware.OptionalAuth)
	api.Get("/products/{id}/reviews", "reviews.index", ctx.Wrap(reviewController.Index))

	// Authenticated storefront
	user := api.Group("", middleware.RequireAuth)
	user.Get("/auth/me", "auth.me", ctx.Wrap(authController.Me))

	user.Get("/cart", "cart.show", ctx.Wrap(cartController.Show))
	user.Post("/cart", "cart.add", ctx.Wrap(cartController.Add))
	user.Put("/cart/{productId}", "cart.update", ctx.Wrap(cartController.UpdateItem))
	user.Delete("/cart/{productId}", "cart.remove", ctx.Wrap(cartController.Remove))
	user.Post("/cart/checkout", "cart.checkout", ctx.Wrap(cartController.Checkout))

	user.Get("/orders", "orders.index", ctx.Wrap(orderController.Index))
	user.Get("/orders/{id}", "orders.show", ctx.Wrap(orderController.Show))

	user.Post("/products/{id}/reviews", "reviews.store", ctx.Wrap(reviewController.Store))
	user.Delete("/reviews/{id}", "reviews.destroy", ctx.Wrap(reviewController.Destroy))

	user.Get("/wishlist", "wishlist.index", ctx.Wrap(wishlistController.Index))
	user.Post("/wishlist", "wishlist.store", ctx.Wrap(wishlistController.Store))
	user.Get("/wishlist/{productId}", "wishlist.check", ctx.Wrap(wishlistController.Check))
	user.Delete("/wishlist/{productId}", "wishlist.destroy", ctx.Wrap(wishlistController.Destroy))

	// Back office
	admin := api.Group("/admin", middleware.RequireAuth, middleware.RequireAdmin)
	admin.Post("/products", "admin.products.store", ctx.Wrap(productController.Store))
	admin.Put("/products/{id}", "admin.products.update", ctx.Wrap(productController.Update))
	admin.Delete("/products/{id}", "admin.products.destroy", ctx.Wrap(productController.Destroy))
	admin.Post("/products/{id}/image", "admin.products.image", ctx.Wrap(productController.UploadImage))
	admin.Get("/orders", "admin.orders.index", ctx.Wrap(orderController.AdminIndex))
}
