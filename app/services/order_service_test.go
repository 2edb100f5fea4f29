package services_test

import (
	"testing"

	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryIsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	carts := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)

	_, err := carts.Add(alice.ID, watch.ID, 1)
	require.NoError(t, err)
	aliceOrder, err := checkout.Checkout(alice.ID)
	require.NoError(t, err)

	orders := services.NewOrderService(db)

	mine, err := orders.ForUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := orders.ForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	// Bob cannot read Alice's order; the id reads as not found.
	_, err = orders.Get(bob.ID, aliceOrder.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestAdminSeesAllOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	carts := services.NewCartService(db)
	checkout := services.NewCheckoutService(db)

	_, err := carts.Add(alice.ID, watch.ID, 1)
	require.NoError(t, err)
	_, err = checkout.Checkout(alice.ID)
	require.NoError(t, err)

	_, err = carts.Add(bob.ID, bag.ID, 1)
	require.NoError(t, err)
	_, err = checkout.Checkout(bob.ID)
	require.NoError(t, err)

	all, err := services.NewOrderService(db).All()
	require.NoError(t, err)

	require.Len(t, all, 2)
	assert.Equal(t, "bob", all[0].Username)
	assert.Equal(t, "alice", all[1].Username)
	require.Len(t, all[0].Items, 1)
	assert.Equal(t, "Leather Bag", all[0].Items[0].Name)
}
