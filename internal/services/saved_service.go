package services

import (
	"context"
	"time"

	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedTourService struct {
	savedRepo models.SavedTourRepo
	tourRepo  models.TourRepo
}

func NewSavedTourService(savedRepo models.SavedTourRepo, tourRepo models.TourRepo) *SavedTourService {
	return &SavedTourService{
		savedRepo: savedRepo,
		tourRepo:  tourRepo,
	}
}

func (ss *SavedTourService) SaveTour(ctx context.Context, userID, tourID string) (*models.SavedTourView, error) {
	parsedUserID, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: userID}
	}
	parsedTourID, err := primitive.ObjectIDFromHex(helpers.StringTrim(tourID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: tourID}
	}

	tour, err := ss.tourRepo.GetTourByID(ctx, parsedTourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}

	// Explicit pre-check; the unique index in the store is the fallback.
	exists, err := ss.savedRepo.HasSavedTour(ctx, parsedUserID, parsedTourID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &models.DuplicateError{Resource: "Saved tour"}
	}

	saved := &models.SavedTour{
		UserID:  parsedUserID,
		TourID:  parsedTourID,
		SavedAt: time.Now(),
	}
	created, err := ss.savedRepo.SaveTour(ctx, saved)
	if err != nil {
		return nil, err
	}
	return models.NewSavedTourView(created, tour), nil
}

func (ss *SavedTourService) RemoveSavedTour(ctx context.Context, userID, tourID string) error {
	parsedUserID, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return &models.MalformedIDError{Field: "user ID", Value: userID}
	}
	parsedTourID, err := primitive.ObjectIDFromHex(helpers.StringTrim(tourID))
	if err != nil {
		return &models.MalformedIDError{Field: "tour ID", Value: tourID}
	}

	removed, err := ss.savedRepo.RemoveSavedTour(ctx, parsedUserID, parsedTourID)
	if err != nil {
		return err
	}
	if !removed {
		return &models.NotFoundError{Resource: "Saved tour"}
	}
	return nil
}

func (ss *SavedTourService) GetSavedTours(ctx context.Context, userID string) ([]*models.SavedTourView, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: userID}
	}

	saved, err := ss.savedRepo.GetSavedToursByUser(ctx, parsed)
	if err != nil {
		return nil, err
	}

	views := make([]*models.SavedTourView, 0, len(saved))
	for _, s := range saved {
		tour, err := ss.tourRepo.GetTourByID(ctx, s.TourID)
		if err != nil {
			return nil, err
		}
		views = append(views, models.NewSavedTourView(s, tour))
	}
	return views, nil
}
