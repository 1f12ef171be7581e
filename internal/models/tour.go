package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TourColName = "tours"
)

var TourRegions = []string{"north", "south", "west", "east", "central"}

var TourCategories = []string{"heritage", "adventure", "beach", "wellness", "cultural", "spiritual"}

func IsValidRegion(region string) bool {
	for _, r := range TourRegions {
		if r == region {
			return true
		}
	}
	return false
}

func IsValidCategory(category string) bool {
	for _, c := range TourCategories {
		if c == category {
			return true
		}
	}
	return false
}

type ItineraryDay struct {
	Day         int    `bson:"day" json:"day"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

// Rating is a single user's score for a tour. A user has at most one entry
// per tour; resubmissions overwrite the existing entry in place.
type Rating struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Rating    int                `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Review    string             `bson:"review" json:"review"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type Tour struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title" validate:"required"`
	Description         string             `bson:"description" json:"description"`
	Price               int                `bson:"price" json:"price" validate:"gte=0"`
	Duration            string             `bson:"duration" json:"duration"`
	Region              string             `bson:"region" json:"region"`
	Category            string             `bson:"category" json:"category"`
	MaxParticipants     int                `bson:"max_participants" json:"maxParticipants"`
	CurrentParticipants int                `bson:"current_participants" json:"currentParticipants"`
	Images              []string           `bson:"images" json:"images"`
	Itinerary           []ItineraryDay     `bson:"itinerary" json:"itinerary"`
	Ratings             []Rating           `bson:"ratings" json:"ratings"`
	AverageRating       float64            `bson:"average_rating" json:"averageRating"`
	TotalRatings        int                `bson:"total_ratings" json:"totalRatings"`
	IsActive            bool               `bson:"is_active" json:"isActive"`
	CreatedAt           time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updated_at" json:"updatedAt"`
}

func (t *Tour) BeforeCreate() error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	return nil
}

// NormalizeItinerary renumbers itinerary days 1..N. Runs on every catalog
// write so stored day numbers never depend on client input.
func (t *Tour) NormalizeItinerary() {
	for i := range t.Itinerary {
		t.Itinerary[i].Day = i + 1
	}
}

func (t *Tour) ValidateTour() error {
	var violations []string
	if t.Title == "" {
		violations = append(violations, "Title is required")
	}
	if t.Price < 0 {
		violations = append(violations, "Price cannot be negative")
	}
	if !IsValidRegion(t.Region) {
		violations = append(violations, "Region must be one of: north, south, west, east, central")
	}
	if !IsValidCategory(t.Category) {
		violations = append(violations, "Category must be one of: heritage, adventure, beach, wellness, cultural, spiritual")
	}
	if t.MaxParticipants <= 0 {
		violations = append(violations, "Max participants must be greater than 0")
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// FirstImage returns the tour's first image, or a placeholder when none is set.
func (t *Tour) FirstImage() string {
	if len(t.Images) > 0 {
		return t.Images[0]
	}
	return PlaceholderImage
}

// RecomputeAggregate derives the average rating and rating count from the
// full rating list. Every save path that touches ratings must persist the
// values this returns; the aggregate is never updated incrementally.
func RecomputeAggregate(ratings []Rating) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings)), len(ratings)
}

// TourSummary is the slice of tour fields joined into booking and
// saved-tour views.
type TourSummary struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Image    string `json:"image"`
}

// Sentinels substituted when a referenced tour or user has been deleted
// upstream; list reads stay total instead of failing.
const (
	PlaceholderImage     = "/images/placeholder.jpg"
	MissingTourTitle     = "Tour not found"
	MissingFieldSentinel = "N/A"
)

func SummarizeTour(t *Tour) TourSummary {
	if t == nil {
		return TourSummary{
			Title:    MissingTourTitle,
			Duration: MissingFieldSentinel,
			Image:    PlaceholderImage,
		}
	}
	return TourSummary{
		ID:       t.ID.Hex(),
		Title:    t.Title,
		Price:    t.Price,
		Duration: t.Duration,
		Image:    t.FirstImage(),
	}
}
