package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SavedTourColName = "saved_tours"
)

// SavedTour is a user's bookmark of a tour. Exactly one record may exist per
// (user, tour) pair; the pre-insert check in the repo is backed by a unique
// compound index created at connect time.
type SavedTour struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  primitive.ObjectID `bson:"user_id" json:"userId"`
	TourID  primitive.ObjectID `bson:"tour_id" json:"tourId"`
	SavedAt time.Time          `bson:"saved_at" json:"savedAt"`
}

func (s *SavedTour) BeforeCreate() error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	return nil
}

type SavedTourView struct {
	ID      string      `json:"id"`
	UserID  string      `json:"userId"`
	TourID  string      `json:"tourId"`
	SavedAt time.Time   `json:"savedAt"`
	Tour    TourSummary `json:"tour"`
}

func NewSavedTourView(s *SavedTour, tour *Tour) *SavedTourView {
	return &SavedTourView{
		ID:      s.ID.Hex(),
		UserID:  s.UserID.Hex(),
		TourID:  s.TourID.Hex(),
		SavedAt: s.SavedAt,
		Tour:    SummarizeTour(tour),
	}
}
