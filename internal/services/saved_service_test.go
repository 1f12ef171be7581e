package services

import (
	"context"
	"testing"
	"time"

	"github.com/kofiasare/tourbay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type savedFixture struct {
	tours *fakeTourRepo
	saved *fakeSavedRepo
	svc   *SavedTourService
	tour  *models.Tour
	user  primitive.ObjectID
}

func newSavedFixture(t *testing.T) *savedFixture {
	t.Helper()
	tours := newFakeTourRepo()
	saved := newFakeSavedRepo()

	tour := &models.Tour{
		ID:       primitive.NewObjectID(),
		Title:    "Busua Beach Escape",
		Price:    750,
		Duration: "2 days",
		Region:   "west",
		Category: "beach",
		IsActive: true,
	}
	tours.tours[tour.ID] = tour

	return &savedFixture{
		tours: tours,
		saved: saved,
		svc:   NewSavedTourService(saved, tours),
		tour:  tour,
		user:  primitive.NewObjectID(),
	}
}

func TestSaveTourReturnsJoinedView(t *testing.T) {
	fx := newSavedFixture(t)

	view, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, fx.tour.Title, view.Tour.Title)
	assert.Equal(t, fx.tour.Price, view.Tour.Price)
	assert.False(t, view.SavedAt.IsZero())
}

func TestSaveTourRejectsDuplicatePair(t *testing.T) {
	fx := newSavedFixture(t)

	_, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	require.NoError(t, err)

	_, err = fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	var duplicateErr *models.DuplicateError
	require.ErrorAs(t, err, &duplicateErr)

	views, err := fx.svc.GetSavedTours(context.Background(), fx.user.Hex())
	require.NoError(t, err)
	assert.Len(t, views, 1, "saved list length stays 1 after the rejected duplicate")
}

func TestSaveTourUnknownTour(t *testing.T) {
	fx := newSavedFixture(t)

	_, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), primitive.NewObjectID().Hex())
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestRemoveSavedTourNeverSaved(t *testing.T) {
	fx := newSavedFixture(t)

	err := fx.svc.RemoveSavedTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestRemoveSavedTour(t *testing.T) {
	fx := newSavedFixture(t)

	_, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	require.NoError(t, err)

	require.NoError(t, fx.svc.RemoveSavedTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex()))

	views, err := fx.svc.GetSavedTours(context.Background(), fx.user.Hex())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetSavedToursNewestFirst(t *testing.T) {
	fx := newSavedFixture(t)

	second := &models.Tour{
		ID:       primitive.NewObjectID(),
		Title:    "Lake Bosomtwe Retreat",
		Region:   "central",
		Category: "wellness",
		IsActive: true,
	}
	fx.tours.tours[second.ID] = second

	_, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	require.NoError(t, err)

	// Force distinct timestamps so the ordering assertion is stable.
	for key := range fx.saved.saved {
		fx.saved.saved[key].SavedAt = time.Now().Add(-time.Hour)
	}

	_, err = fx.svc.SaveTour(context.Background(), fx.user.Hex(), second.ID.Hex())
	require.NoError(t, err)

	views, err := fx.svc.GetSavedTours(context.Background(), fx.user.Hex())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, second.Title, views[0].Tour.Title)
	assert.Equal(t, fx.tour.Title, views[1].Tour.Title)
}

func TestGetSavedToursDanglingTour(t *testing.T) {
	fx := newSavedFixture(t)

	_, err := fx.svc.SaveTour(context.Background(), fx.user.Hex(), fx.tour.ID.Hex())
	require.NoError(t, err)

	delete(fx.tours.tours, fx.tour.ID)

	views, err := fx.svc.GetSavedTours(context.Background(), fx.user.Hex())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, models.MissingTourTitle, views[0].Tour.Title)
}

func TestSavedTourMalformedIDs(t *testing.T) {
	fx := newSavedFixture(t)

	_, err := fx.svc.SaveTour(context.Background(), "bad", fx.tour.ID.Hex())
	var malformedErr *models.MalformedIDError
	require.ErrorAs(t, err, &malformedErr)

	err = fx.svc.RemoveSavedTour(context.Background(), fx.user.Hex(), "bad")
	require.ErrorAs(t, err, &malformedErr)
}
