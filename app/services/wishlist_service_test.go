package services_test

import (
	"testing"

	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddListRemove(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	svc := services.NewWishlistService(db)

	require.NoError(t, svc.Add(user.ID, watch.ID))
	require.NoError(t, svc.Add(user.ID, bag.ID))

	products, err := svc.List(user.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Classic Watch", products[0].Name)

	ok, err := svc.Contains(user.ID, watch.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Remove(user.ID, watch.ID))

	ok, err = svc.Contains(user.ID, watch.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	products, err = svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlistAddTwiceConflicts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewWishlistService(db)
	require.NoError(t, svc.Add(user.ID, watch.ID))

	err := svc.Add(user.ID, watch.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	products, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlistUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")

	err := services.NewWishlistService(db).Add(user.ID, 999)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestWishlistReAddAfterRemove(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewWishlistService(db)
	require.NoError(t, svc.Add(user.ID, watch.ID))
	require.NoError(t, svc.Remove(user.ID, watch.ID))

	// The removed entry must not linger in the unique (user, product)
	// index and block saving the product again.
	require.NoError(t, svc.Add(user.ID, watch.ID))

	products, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestWishlistRemoveAbsent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "shopper")

	err := services.NewWishlistService(db).Remove(user.ID, 42)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestWishlistsAreScopedPerUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewWishlistService(db)
	require.NoError(t, svc.Add(alice.ID, watch.ID))

	ok, err := svc.Contains(bob.ID, watch.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
