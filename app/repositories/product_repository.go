package repositories

import (
	"strings"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogQuery is the set of catalogue filters parsed from the query
// string. Zero values mean "no filter"; malformed numeric bounds are
// silently ignored so a bad URL still returns the full catalogue.
type CatalogQuery struct {
	Category string
	MinPrice string
	MaxPrice string
	Search   string
	Sort     string
}

// scopes converts the query into composable GORM scopes. Each filter is
// independent; they stack in a single WHERE clause.
func (q CatalogQuery) scopes() []func(*gorm.DB) *gorm.DB {
	var out []func(*gorm.DB) *gorm.DB

	if q.Category != "" && q.Category != "All" {
		category := q.Category
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("category = ?", category)
		})
	}

	if min, err := decimal.NewFromString(q.MinPrice); err == nil && q.MinPrice != "" {
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("price >= ?", min)
		})
	}

	if max, err := decimal.NewFromString(q.MaxPrice); err == nil && q.MaxPrice != "" {
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("price <= ?", max)
		})
	}

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		out = append(out, func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		})
	}

	out = append(out, q.sortScope())
	return out
}

func (q CatalogQuery) sortScope() func(*gorm.DB) *gorm.DB {
	order := "id ASC"
	switch q.Sort {
	case "price_asc":
		order = "price ASC"
	case "price_desc":
		order = "price DESC"
	case "newest":
		order = "id DESC"
	}
	return func(db *gorm.DB) *gorm.DB { return db.Order(order) }
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns products matching the catalogue query.
func (r *ProductRepository) List(q CatalogQuery) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Scopes(q.scopes()...).Find(&products).Error
	return products, err
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

// Categories returns the distinct category names in the catalogue.
func (r *ProductRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// TrendingProduct pairs a product with how many carts currently hold it.
type TrendingProduct struct {
	models.Product
	CartCount int64 `json:"cartCount"`
}

// Trending ranks products by how many cart lines reference them, most
// carted first, and returns the top limit rows.
func (r *ProductRepository) Trending(limit int) ([]TrendingProduct, error) {
	var out []TrendingProduct
	err := r.db.Model(&models.Product{}).
		Select("products.*, COUNT(cart_items.id) AS cart_count").
		Joins("JOIN cart_items ON cart_items.product_id = products.id").
		Group("products.id").
		Order("cart_count DESC, products.id ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DecrementStock atomically reduces stock for a product, failing when the
// remaining stock is below qty. Returns the number of rows updated: 0
// means another checkout got there first.
func (r *ProductRepository) DecrementStock(tx *gorm.DB, productID uint, qty int) (int64, error) {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}
