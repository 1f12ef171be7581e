package services

import (
	"context"
	"time"

	"github.com/kofiasare/tourbay/internal/helpers"
	"github.com/kofiasare/tourbay/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingService struct {
	tourRepo models.TourRepo
	userRepo models.UserRepo
}

func NewRatingService(tourRepo models.TourRepo, userRepo models.UserRepo) *RatingService {
	return &RatingService{
		tourRepo: tourRepo,
		userRepo: userRepo,
	}
}

// RatingResult echoes the submitted rating along with the recomputed
// aggregate for the tour.
type RatingResult struct {
	Rating        models.Rating `json:"rating"`
	AverageRating float64       `json:"averageRating"`
	TotalRatings  int           `json:"totalRatings"`
}

// RatingEntry is a rating joined with the submitting user's identity.
type RatingEntry struct {
	models.Rating
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// TourRatings is the full rating list plus the current aggregate.
type TourRatings struct {
	Ratings       []RatingEntry `json:"ratings"`
	AverageRating float64       `json:"averageRating"`
	TotalRatings  int           `json:"totalRatings"`
}

// RateTour records a user's rating for a tour. A second submission from the
// same user overwrites the prior entry in place instead of appending.
func (rs *RatingService) RateTour(ctx context.Context, tourID, userID string, rating int, review string) (*RatingResult, error) {
	if rating < 1 || rating > 5 {
		return nil, models.NewValidationError("Rating must be an integer between 1 and 5")
	}

	parsedTourID, err := primitive.ObjectIDFromHex(helpers.StringTrim(tourID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: tourID}
	}
	parsedUserID, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: userID}
	}

	tour, err := rs.tourRepo.GetTourByID(ctx, parsedTourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}

	entry := models.Rating{
		UserID:    parsedUserID,
		Rating:    rating,
		Review:    helpers.StringTrim(review),
		CreatedAt: time.Now(),
	}

	ratings := tour.Ratings
	replaced := false
	for i := range ratings {
		if ratings[i].UserID == parsedUserID {
			ratings[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		ratings = append(ratings, entry)
	}

	// ReplaceRatings recomputes the aggregate in the same persist; two
	// concurrent raters race on the list and the last writer wins.
	updated, err := rs.tourRepo.ReplaceRatings(ctx, parsedTourID, ratings)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}

	return &RatingResult{
		Rating:        entry,
		AverageRating: updated.AverageRating,
		TotalRatings:  updated.TotalRatings,
	}, nil
}

func (rs *RatingService) GetTourRatings(ctx context.Context, tourID string) (*TourRatings, error) {
	parsed, err := primitive.ObjectIDFromHex(helpers.StringTrim(tourID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: tourID}
	}

	tour, err := rs.tourRepo.GetTourByID(ctx, parsed)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}

	entries := make([]RatingEntry, 0, len(tour.Ratings))
	for _, r := range tour.Ratings {
		entry := RatingEntry{
			Rating:    r,
			UserName:  models.MissingFieldSentinel,
			UserEmail: models.MissingFieldSentinel,
		}
		user, err := rs.userRepo.GetUserByID(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			entry.UserName = user.Name
			entry.UserEmail = user.Email
		}
		entries = append(entries, entry)
	}

	return &TourRatings{
		Ratings:       entries,
		AverageRating: tour.AverageRating,
		TotalRatings:  tour.TotalRatings,
	}, nil
}

// GetUserRating returns the user's rating entry for a tour, or nil when the
// user has not rated it. Absence is a normal result, not an error.
func (rs *RatingService) GetUserRating(ctx context.Context, tourID, userID string) (*models.Rating, error) {
	parsedTourID, err := primitive.ObjectIDFromHex(helpers.StringTrim(tourID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "tour ID", Value: tourID}
	}
	parsedUserID, err := primitive.ObjectIDFromHex(helpers.StringTrim(userID))
	if err != nil {
		return nil, &models.MalformedIDError{Field: "user ID", Value: userID}
	}

	tour, err := rs.tourRepo.GetTourByID(ctx, parsedTourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, &models.NotFoundError{Resource: "Tour"}
	}

	for i := range tour.Ratings {
		if tour.Ratings[i].UserID == parsedUserID {
			return &tour.Ratings[i], nil
		}
	}
	return nil, nil
}
