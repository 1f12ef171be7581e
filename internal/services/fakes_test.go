package services

import (
	"context"
	"sort"
	"time"

	"github.com/kofiasare/tourbay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTourRepo struct {
	tours map[primitive.ObjectID]*models.Tour
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[primitive.ObjectID]*models.Tour)}
}

func (f *fakeTourRepo) CreateTour(ctx context.Context, tour *models.Tour) (*models.Tour, error) {
	if err := tour.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now
	if tour.Ratings == nil {
		tour.Ratings = []models.Rating{}
	}
	tour.AverageRating, tour.TotalRatings = models.RecomputeAggregate(tour.Ratings)
	f.tours[tour.ID] = tour
	return tour, nil
}

func (f *fakeTourRepo) UpdateTour(ctx context.Context, id primitive.ObjectID, tour *models.Tour) (*models.Tour, error) {
	existing, ok := f.tours[id]
	if !ok {
		return nil, nil
	}
	existing.Title = tour.Title
	existing.Description = tour.Description
	existing.Price = tour.Price
	existing.Duration = tour.Duration
	existing.Region = tour.Region
	existing.Category = tour.Category
	existing.MaxParticipants = tour.MaxParticipants
	existing.Images = tour.Images
	existing.Itinerary = tour.Itinerary
	existing.IsActive = tour.IsActive
	existing.UpdatedAt = time.Now()
	return existing, nil
}

func (f *fakeTourRepo) GetTourByID(ctx context.Context, id primitive.ObjectID) (*models.Tour, error) {
	tour, ok := f.tours[id]
	if !ok {
		return nil, nil
	}
	return tour, nil
}

func (f *fakeTourRepo) ListTours(ctx context.Context, filter models.TourFilter) ([]*models.Tour, error) {
	var out []*models.Tour
	for _, t := range f.tours {
		if filter.Region != "" && t.Region != filter.Region {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.ActiveOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTourRepo) DeactivateTour(ctx context.Context, id primitive.ObjectID) (bool, error) {
	tour, ok := f.tours[id]
	if !ok {
		return false, nil
	}
	tour.IsActive = false
	return true, nil
}

func (f *fakeTourRepo) ReplaceRatings(ctx context.Context, id primitive.ObjectID, ratings []models.Rating) (*models.Tour, error) {
	tour, ok := f.tours[id]
	if !ok {
		return nil, nil
	}
	tour.Ratings = ratings
	tour.AverageRating, tour.TotalRatings = models.RecomputeAggregate(ratings)
	tour.UpdatedAt = time.Now()
	return tour, nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if err := booking.BeforeCreate(); err != nil {
		return nil, err
	}
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetAllBookings(ctx context.Context) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return booking, nil
}

func (f *fakeBookingRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := f.bookings[id]; !ok {
		return false, nil
	}
	delete(f.bookings, id)
	return true, nil
}

type savedPair struct {
	userID primitive.ObjectID
	tourID primitive.ObjectID
}

type fakeSavedRepo struct {
	saved map[savedPair]*models.SavedTour
}

func newFakeSavedRepo() *fakeSavedRepo {
	return &fakeSavedRepo{saved: make(map[savedPair]*models.SavedTour)}
}

func (f *fakeSavedRepo) SaveTour(ctx context.Context, saved *models.SavedTour) (*models.SavedTour, error) {
	key := savedPair{userID: saved.UserID, tourID: saved.TourID}
	if _, ok := f.saved[key]; ok {
		return nil, &models.DuplicateError{Resource: "Saved tour"}
	}
	if err := saved.BeforeCreate(); err != nil {
		return nil, err
	}
	f.saved[key] = saved
	return saved, nil
}

func (f *fakeSavedRepo) HasSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error) {
	_, ok := f.saved[savedPair{userID: userID, tourID: tourID}]
	return ok, nil
}

func (f *fakeSavedRepo) RemoveSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error) {
	key := savedPair{userID: userID, tourID: tourID}
	if _, ok := f.saved[key]; !ok {
		return false, nil
	}
	delete(f.saved, key)
	return true, nil
}

func (f *fakeSavedRepo) GetSavedToursByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.SavedTour, error) {
	var out []*models.SavedTour
	for _, s := range f.saved {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}
