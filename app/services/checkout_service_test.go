package services_test

import (
	"sync"
	"testing"

	"github.com/shashiranjanraj/maison/app/models"
	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	carts := services.NewCartService(db)
	_, err := carts.Add(user.ID, watch.ID, 2)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, bag.ID, 1)
	require.NoError(t, err)

	order, err := services.NewCheckoutService(db).Checkout(user.ID)
	require.NoError(t, err)

	// 2 × 120.00 + 85.50
	assert.Equal(t, "325.5", order.Total.String())
	assert.Len(t, order.Items, 2)
	assert.Equal(t, user.ID, order.UserID)

	// Stock decremented per line. Fresh struct per lookup: First keeps
	// the previous primary key in its conditions otherwise.
	var freshWatch, freshBag models.Product
	require.NoError(t, db.First(&freshWatch, watch.ID).Error)
	assert.Equal(t, 48, freshWatch.Stock)
	require.NoError(t, db.First(&freshBag, bag.ID).Error)
	assert.Equal(t, 19, freshBag.Stock)

	// Cart is empty afterwards.
	cart, err := carts.View(user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Total.IsZero())
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")

	_, err := services.NewCheckoutService(db).Checkout(user.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindEmptyCart))
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	headphones := seedProduct(t, db, "Wireless Headphones", "250.00", "Electronics", 1)

	carts := services.NewCartService(db)
	_, err := carts.Add(user.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, headphones.ID, 1)
	require.NoError(t, err)

	// Stock drops out from under the cart after the lines were added.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", headphones.ID).
		UpdateColumn("stock", 0).Error)

	_, err = services.NewCheckoutService(db).Checkout(user.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))
	assert.Contains(t, apperr.Message(err), "Wireless Headphones")

	// The watch line rolled back too: no order, no stock change, cart intact.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, watch.ID).Error)
	assert.Equal(t, 50, fresh.Stock)

	cart, err := carts.View(user.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCheckoutSnapshotsNameAndPrice(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	shoes := seedProduct(t, db, "Running Shoes", "95.00", "Fashion", 30)

	carts := services.NewCartService(db)
	_, err := carts.Add(user.ID, shoes.ID, 1)
	require.NoError(t, err)

	order, err := services.NewCheckoutService(db).Checkout(user.ID)
	require.NoError(t, err)

	// Reprice and rename the product after purchase.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", shoes.ID).
		Updates(map[string]interface{}{"name": "Trail Shoes", "price": "199.99"}).Error)

	fetched, err := services.NewOrderService(db).Get(user.ID, order.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Running Shoes", fetched.Items[0].Name)
	assert.Equal(t, "95", fetched.Items[0].Price.String())
	assert.Equal(t, "95", fetched.Total.String())
}

func TestRepeatPurchaseAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	carts := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)

	_, err := carts.Add(user.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = checkout.Checkout(user.ID)
	require.NoError(t, err)

	// Buying the same product again must work: clearing the cart leaves
	// nothing behind in the unique (user, product) index.
	_, err = carts.Add(user.ID, watch.ID, 1)
	require.NoError(t, err)

	order, err := checkout.Checkout(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "120", order.Total.String())

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 2, orderCount)
}

func TestCheckoutSkipsDelistedProducts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	carts := services.NewCartService(db)
	_, err := carts.Add(user.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(user.ID, bag.ID, 1)
	require.NoError(t, err)

	require.NoError(t, services.NewCatalogService(db).Delete(bag.ID))

	order, err := services.NewCheckoutService(db).Checkout(user.ID)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Classic Watch", order.Items[0].Name)
	assert.Equal(t, "120", order.Total.String())
}

func TestConcurrentCheckoutNeverOversells(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	headphones := seedProduct(t, db, "Wireless Headphones", "250.00", "Electronics", 1)

	carts := services.NewCartService(db)
	_, err := carts.Add(alice.ID, headphones.ID, 1)
	require.NoError(t, err)
	_, err = carts.Add(bob.ID, headphones.ID, 1)
	require.NoError(t, err)

	checkout := services.NewCheckoutService(db)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, userID := range []uint{alice.ID, bob.ID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			_, results[i] = checkout.Checkout(userID)
		}(i, userID)
	}
	wg.Wait()

	// Exactly one checkout wins the last unit.
	var failures int
	for _, err := range results {
		if err != nil {
			failures++
			assert.True(t, apperr.Is(err, apperr.KindInsufficientStock))
		}
	}
	assert.Equal(t, 1, failures)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, headphones.ID).Error)
	assert.Equal(t, 0, fresh.Stock)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)
}
