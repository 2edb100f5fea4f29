package repositories_test

import (
	"testing"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/pkg/collection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}))
	return db
}

// seedCatalog loads the four starter products and returns them by name.
func seedCatalog(t *testing.T, db *gorm.DB) map[string]models.Product {
	t.Helper()

	rows := []models.Product{
		{Name: "Classic Watch", Description: "A timeless timepiece.", Price: decimal.RequireFromString("120.00"), Category: "Accessories", Stock: 50},
		{Name: "Leather Bag", Description: "Durable and stylish leather bag.", Price: decimal.RequireFromString("85.50"), Category: "Accessories", Stock: 20},
		{Name: "Wireless Headphones", Description: "Noise cancelling high fidelity.", Price: decimal.RequireFromString("250.00"), Category: "Electronics", Stock: 15},
		{Name: "Running Shoes", Description: "Lightweight comfort for your run.", Price: decimal.RequireFromString("95.00"), Category: "Fashion", Stock: 30},
	}

	out := make(map[string]models.Product, len(rows))
	for _, p := range rows {
		require.NoError(t, db.Create(&p).Error)
		out[p.Name] = p
	}
	return out
}

func names(products []models.Product) []string {
	return collection.Map(products, func(p models.Product) string { return p.Name })
}

func TestListNoFiltersReturnsAllInIDOrder(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	products, err := repositories.NewProductRepository(db).List(repositories.CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic Watch", "Leather Bag", "Wireless Headphones", "Running Shoes"}, names(products))
}

func TestCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{Category: "Accessories"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic Watch", "Leather Bag"}, names(products))

	// "All" is the synthetic no-filter category.
	products, err = repo.List(repositories.CatalogQuery{Category: "All"})
	require.NoError(t, err)
	assert.Len(t, products, 4)

	// Unknown category matches nothing.
	products, err = repo.List(repositories.CatalogQuery{Category: "Garden"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{MinPrice: "95.00", MaxPrice: "120.00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic Watch", "Running Shoes"}, names(products))
}

func TestMalformedPriceBoundsAreIgnored(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{MinPrice: "cheap", MaxPrice: "expensive"})
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestSearchIsCaseInsensitiveOverNameAndDescription(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{Search: "WIRELESS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wireless Headphones"}, names(products))

	// Matches description text too.
	products, err = repo.List(repositories.CatalogQuery{Search: "timeless"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Classic Watch"}, names(products))
}

func TestSortOrders(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{Sort: "price_asc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Leather Bag", "Running Shoes", "Classic Watch", "Wireless Headphones"}, names(products))

	products, err = repo.List(repositories.CatalogQuery{Sort: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Wireless Headphones", "Classic Watch", "Running Shoes", "Leather Bag"}, names(products))

	products, err = repo.List(repositories.CatalogQuery{Sort: "newest"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Running Shoes", "Wireless Headphones", "Leather Bag", "Classic Watch"}, names(products))

	// Unknown sort falls back to id order.
	products, err = repo.List(repositories.CatalogQuery{Sort: "alphabetical"})
	require.NoError(t, err)
	assert.Equal(t, "Classic Watch", products[0].Name)
}

func TestFiltersCompose(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	products, err := repo.List(repositories.CatalogQuery{
		Category: "Accessories",
		MaxPrice: "100.00",
		Sort:     "price_desc",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Leather Bag"}, names(products))
}

func TestDecrementStockGuard(t *testing.T) {
	db := newTestDB(t)
	catalog := seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)
	headphones := catalog["Wireless Headphones"]

	affected, err := repo.DecrementStock(db, headphones.ID, 15)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	// Stock is now 0; any further decrement fails without changing rows.
	affected, err = repo.DecrementStock(db, headphones.ID, 1)
	require.NoError(t, err)
	assert.Zero(t, affected)

	fresh, err := repo.FindByID(headphones.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Stock)
}

func TestTrendingCountsDistinctCartLines(t *testing.T) {
	db := newTestDB(t)
	catalog := seedCatalog(t, db)
	repo := repositories.NewProductRepository(db)

	watch := catalog["Classic Watch"]
	bag := catalog["Leather Bag"]

	lines := []models.CartItem{
		{UserID: 1, ProductID: watch.ID, Quantity: 1},
		{UserID: 2, ProductID: watch.ID, Quantity: 5},
		{UserID: 1, ProductID: bag.ID, Quantity: 1},
	}
	for _, line := range lines {
		require.NoError(t, db.Create(&line).Error)
	}

	trending, err := repo.Trending(4)
	require.NoError(t, err)

	require.Len(t, trending, 2)
	assert.Equal(t, "Classic Watch", trending[0].Name)
	assert.EqualValues(t, 2, trending[0].CartCount) // cart lines, not quantity
	assert.Equal(t, "Leather Bag", trending[1].Name)
}
