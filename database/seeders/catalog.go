package seeders

import (
	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/config"
	"github.com/shashiranjanraj/maison/pkg/auth"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("products", SeedProducts)
	Register("admin", SeedAdmin)
}

// SeedProducts loads the starter catalogue. Skips products that already
// exist so reseeding is safe.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{
			Name:        "Classic Watch",
			Description: "A timeless timepiece.",
			Price:       decimal.NewFromFloat(120.00),
			Image:       "https://images.unsplash.com/photo-1524592094714-0f0654e20314?auto=format&fit=crop&w=600&q=80",
			Category:    "Accessories",
			Stock:       50,
		},
		{
			Name:        "Leather Bag",
			Description: "Durable and stylish leather bag.",
			Price:       decimal.NewFromFloat(85.50),
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=600&q=80",
			Category:    "Accessories",
			Stock:       20,
		},
		{
			Name:        "Wireless Headphones",
			Description: "Noise cancelling high fidelity.",
			Price:       decimal.NewFromFloat(250.00),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=600&q=80",
			Category:    "Electronics",
			Stock:       15,
		},
		{
			Name:        "Running Shoes",
			Description: "Lightweight comfort for your run.",
			Price:       decimal.NewFromFloat(95.00),
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=600&q=80",
			Category:    "Fashion",
			Stock:       30,
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the back-office account if it does not exist. The
// password comes from ADMIN_PASSWORD; set it before seeding anything but
// a dev database.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "admin123"))
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username: "admin",
		Password: hash,
		Role:     auth.RoleAdmin,
	}).Error
}
