package services

import (
	"context"

	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TourService struct {
	tourRepo models.TourRepo
}

func NewTourService(tourRepo models.TourRepo) *TourService {
	return &TourService{
		tourRepo: tourRepo,
	}
}

func (ts *TourService) CreateTour(ctx context.Context, tour *models.Tour) (*models.Tour, error) {
	tour.Title = helpers.StringTrim(tour.Title)
	if err := tour.ValidateTour(); err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(tour); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	tour.NormalizeItinerary()
	tour.IsActive = true
	return ts.tourRepo.CreateTour(ctx, tour)
}

func (ts *TourService) UpdateTour(ctx context.Context, id string, tour *models.Tour) (*models.Tour, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(id))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: id}
	}

	tour.Title = helpers.StringTrim(tour.Title)
	if err := tour.ValidateTour(); err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(tour); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	tour.NormalizeItinerary()

	updated, err := ts.tourRepo.UpdateTour(ctx, parsed, tour)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}
	return updated, nil
}

func (ts *TourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(id))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: id}
	}

	tour, err := ts.tourRepo.GetTourByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}
	return tour, nil
}

func (ts *TourService) ListTours(ctx context.Context, region, category string) ([]*models.Tour, error) {
	filter := models.TourFilter{
		Region:     helpers.StringTrim(region),
		Category:   helpers.StringTrim(category),
		ActiveOnly: true,
	}
	if filter.Region != "" && !models.IsValidRegion(filter.Region) {
		return nil, models.NewValidationError("Region must be one of: north, south, west, east, central")
	}
	if filter.Category != "" && !models.IsValidCategory(filter.Category) {
		return nil, models.NewValidationError("Category must be one of: heritage, adventure, beach, wellness, cultural, spiritual")
	}

	tours, err := ts.tourRepo.ListTours(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []*models.Tour{}
	}
	return tours, nil
}

// DeactivateTour soft-deletes a tour so existing bookings keep resolving it.
func (ts *TourService) DeactivateTour(ctx context.Context, id string) error {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(id))
	if err != nil {
		return &models.MalformedIDError{Field: "tour ID", Value: id}
	}

	ok, err := ts.tourRepo.DeactivateTour(ctx, parsed)
	if err != nil {
		return err
	}
	if !ok {
		return &models.NotFoundError{Resource: "Tour"}
	}
	return nil
}
