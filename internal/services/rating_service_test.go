package services

import (
	"context"
	"testing"

	"github.com/kofiasare/tourbay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ratingFixture struct {
	tours *fakeTourRepo
	users *fakeUserRepo
	svc   *RatingService
	tour  *models.Tour
}

func newRatingFixture(t *testing.T) *ratingFixture {
	t.Helper()
	tours := newFakeTourRepo()
	users := newFakeUserRepo()

	tour := &models.Tour{
		ID:       primitive.NewObjectID(),
		Title:    "Mole Safari Adventure",
		Price:    1000,
		Region:   "north",
		Category: "adventure",
		IsActive: true,
		Ratings:  []models.Rating{},
	}
	tours.tours[tour.ID] = tour

	return &ratingFixture{
		tours: tours,
		users: users,
		svc:   NewRatingService(tours, users),
		tour:  tour,
	}
}

func (fx *ratingFixture) addUser(name, email string) *models.User {
	user := &models.User{ID: primitive.NewObjectID(), Name: name, Email: email}
	fx.users.users[user.ID] = user
	return user
}

func TestRateTourAggregatesAcrossUsers(t *testing.T) {
	fx := newRatingFixture(t)
	u1 := fx.addUser("Kofi", "kofi@example.com")
	u2 := fx.addUser("Esi", "esi@example.com")

	_, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), u1.ID.Hex(), 3, "decent")
	require.NoError(t, err)

	result, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), u2.ID.Hex(), 5, "superb")
	require.NoError(t, err)

	assert.Equal(t, 4.0, result.AverageRating)
	assert.Equal(t, 2, result.TotalRatings)
}

func TestRateTourResubmissionOverwritesInPlace(t *testing.T) {
	fx := newRatingFixture(t)
	u1 := fx.addUser("Kofi", "kofi@example.com")
	u2 := fx.addUser("Esi", "esi@example.com")

	_, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), u1.ID.Hex(), 4, "good")
	require.NoError(t, err)
	_, err = fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), u2.ID.Hex(), 5, "")
	require.NoError(t, err)

	result, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), u1.ID.Hex(), 2, "changed my mind")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRatings, "list length does not grow on resubmission")
	assert.Equal(t, 3.5, result.AverageRating, "average reflects only the latest value per user")

	// The overwritten entry keeps its list position.
	assert.Equal(t, u1.ID, fx.tour.Ratings[0].UserID)
	assert.Equal(t, 2, fx.tour.Ratings[0].Rating)
	assert.Equal(t, "changed my mind", fx.tour.Ratings[0].Review)
}

func TestRateTourSameUserScenario(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")

	_, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), user.ID.Hex(), 4, "")
	require.NoError(t, err)

	result, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), user.ID.Hex(), 2, "")
	require.NoError(t, err)

	assert.Equal(t, 2.0, result.AverageRating)
	assert.Equal(t, 1, result.TotalRatings)
}

func TestRateTourRejectsOutOfRange(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), user.ID.Hex(), rating, "")
		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
	}
	assert.Empty(t, fx.tour.Ratings)
}

func TestRateTourUnknownTour(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")

	_, err := fx.svc.RateTour(context.Background(), primitive.NewObjectID().Hex(), user.ID.Hex(), 4, "")
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestGetTourRatingsJoinsUsers(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")
	stranger := primitive.NewObjectID()

	_, err := fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), user.ID.Hex(), 5, "")
	require.NoError(t, err)
	_, err = fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), stranger.Hex(), 3, "")
	require.NoError(t, err)

	ratings, err := fx.svc.GetTourRatings(context.Background(), fx.tour.ID.Hex())
	require.NoError(t, err)
	require.Len(t, ratings.Ratings, 2)

	assert.Equal(t, "Kofi", ratings.Ratings[0].UserName)
	assert.Equal(t, "kofi@example.com", ratings.Ratings[0].UserEmail)
	assert.Equal(t, models.MissingFieldSentinel, ratings.Ratings[1].UserName, "deleted rater renders as sentinel")
	assert.Equal(t, 4.0, ratings.AverageRating)
	assert.Equal(t, 2, ratings.TotalRatings)
}

func TestGetUserRatingAbsentIsNotAnError(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")

	rating, err := fx.svc.GetUserRating(context.Background(), fx.tour.ID.Hex(), user.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, rating)

	_, err = fx.svc.RateTour(context.Background(), fx.tour.ID.Hex(), user.ID.Hex(), 4, "solid")
	require.NoError(t, err)

	rating, err = fx.svc.GetUserRating(context.Background(), fx.tour.ID.Hex(), user.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, rating.Rating)
	assert.Equal(t, "solid", rating.Review)
}

func TestGetUserRatingUnknownTour(t *testing.T) {
	fx := newRatingFixture(t)
	user := fx.addUser("Kofi", "kofi@example.com")

	_, err := fx.svc.GetUserRating(context.Background(), primitive.NewObjectID().Hex(), user.ID.Hex())
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}
