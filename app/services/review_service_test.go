package services_test

import (
	"testing"

	"github.com/shashiranjanraj/maison/app/services"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListReviews(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewReviewService(db)

	_, err := svc.Create(alice.ID, watch.ID, services.ReviewInput{
		Rating: 5, Title: "Love it", Comment: "Wears beautifully.",
	})
	require.NoError(t, err)

	_, err = svc.Create(bob.ID, watch.ID, services.ReviewInput{
		Rating: 3, Title: "Decent",
	})
	require.NoError(t, err)

	got, err := svc.ForProduct(watch.ID)
	require.NoError(t, err)

	require.Len(t, got.Reviews, 2)
	// Newest first.
	assert.Equal(t, "bob", got.Reviews[0].Username)
	assert.Equal(t, "alice", got.Reviews[1].Username)

	assert.EqualValues(t, 2, got.Rating.Count)
	assert.InDelta(t, 4.0, got.Rating.Average, 0.001)
}

func TestReviewUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")

	svc := services.NewReviewService(db)

	_, err := svc.Create(user.ID, 999, services.ReviewInput{Rating: 4, Title: "?"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.ForProduct(999)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestProductWithoutReviewsHasZeroSummary(t *testing.T) {
	db := newTestDB(t)
	bag := seedProduct(t, db, "Leather Bag", "85.50", "Accessories", 20)

	got, err := services.NewReviewService(db).ForProduct(bag.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)
	assert.Zero(t, got.Rating.Count)
	assert.Zero(t, got.Rating.Average)
}

func TestDeleteOwnReview(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewReviewService(db)
	review, err := svc.Create(alice.ID, watch.ID, services.ReviewInput{Rating: 5, Title: "Love it"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice.ID, review.ID))

	got, err := svc.ForProduct(watch.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)
	assert.Zero(t, got.Rating.Count)
}

func TestDeleteAnotherUsersReviewIsForbidden(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	watch := seedProduct(t, db, "Classic Watch", "120.00", "Accessories", 50)

	svc := services.NewReviewService(db)
	review, err := svc.Create(alice.ID, watch.ID, services.ReviewInput{Rating: 5, Title: "Love it"})
	require.NoError(t, err)

	err = svc.Delete(bob.ID, review.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))

	// The review is untouched.
	got, err := svc.ForProduct(watch.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reviews, 1)
}

func TestDeleteUnknownReview(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")

	err := services.NewReviewService(db).Delete(alice.ID, 999)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUserMayReviewSameProductTwice(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "alice")
	shoes := seedProduct(t, db, "Running Shoes", "95.00", "Fashion", 30)

	svc := services.NewReviewService(db)

	_, err := svc.Create(user.ID, shoes.ID, services.ReviewInput{Rating: 2, Title: "Too narrow"})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, shoes.ID, services.ReviewInput{Rating: 4, Title: "Broke in nicely"})
	require.NoError(t, err)

	got, err := svc.ForProduct(shoes.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reviews, 2)
	assert.EqualValues(t, 2, got.Rating.Count)
}
