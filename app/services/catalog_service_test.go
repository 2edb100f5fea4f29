package services_test

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/maison/app/repositories"
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIncludesRatingSummary(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	_, err := services.NewReviewService(db).Create(user.ID, watch.ID, services.ReviewInput{
		Rating: 4, Title: "Nice",
	})
	require.NoError(t, err)

	detail, err := services.NewCatalogService(db).Get(watch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Classic Watch", detail.Name)
	assert.EqualValues(t, 1, detail.Rating.Count)
	assert.InDelta(t, 4.0, detail.Rating.Average, 0.001)
}

func TestGetUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := services.NewCatalogService(db).Get(999)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCategoriesIncludeAll(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	seedProduct(t, db, "Wireless Headphones", "250.00", "Electronics", 15)
	seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	categories, err := services.NewCatalogService(db).Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Accessories", "Electronics"}, categories)
}

func TestAdminCreateUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)

	created, err := svc.Create(services.ProductInput{
		Name:     "Silk Scarf",
		Price:    "45.00",
		Category: "Accessories",
		Stock:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, "45", created.Price.String())

	updated, err := svc.Update(created.ID, services.ProductInput{
		Name:     "Silk Scarf",
		Price:    "39.99",
		Category: "Accessories",
		Stock:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, "39.99", updated.Price.String())
	assert.Equal(t, 8, updated.Stock)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.Get(created.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCreateRejectsBadPrice(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewCatalogService(db)

	_, err := svc.Create(services.ProductInput{
		Name: "Broken", Price: "not-a-price", Category: "Misc",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	_, err = svc.Create(services.ProductInput{
		Name: "Broken", Price: "-5.00", Category: "Misc",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestUpdateUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := services.NewCatalogService(db).Update(999, services.ProductInput{
		Name: "Ghost", Price: "1.00", Category: "Misc",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestTrendingRanksByCartPresence(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)
	seedProduct(t, db, "Wireless Headphones", "250.00", "Electronics", 15)

	carts := services.NewCartService(db)
	_, err := carts.Add(alice.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(bob.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(bob.ID, bag.ID, 1)
	require.NoError(t, err)

	trending, err := services.NewCatalogService(db).Trending()
	require.NoError(t, err)

	// Only carted products rank, most carted first.
	require.Len(t, trending, 2)
	assert.Equal(t, "Classic Watch", trending[0].Name)
	assert.EqualValues(t, 2, trending[0].CartCount)
	assert.Equal(t, "Leather Bag", trending[1].Name)
	assert.EqualValues(t, 1, trending[1].CartCount)
}

func TestListDelegatesFilters(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	seedProduct(t, db, "Wireless Headphones", "250.00", "Electronics", 15)

	products, err := services.NewCatalogService(db).List(repositories.CatalogQuery{
		Category: "Electronics",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, strings.HasPrefix(products[0].Name, "Wireless"))
}
