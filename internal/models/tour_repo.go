package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TourFilter narrows catalog listings. Zero values mean "no filter";
// ActiveOnly defaults to listing active tours only.
type TourFilter struct {
	Region     string
	Category   string
	ActiveOnly bool
}

type TourRepo interface {
	CreateTour(ctx context.Context, tour *Tour) (*Tour, error)
	UpdateTour(ctx context.Context, id primitive.ObjectID, tour *Tour) (*Tour, error)
	GetTourByID(ctx context.Context, id primitive.ObjectID) (*Tour, error)
	ListTours(ctx context.Context, filter TourFilter) ([]*Tour, error)
	DeactivateTour(ctx context.Context, id primitive.ObjectID) (bool, error)
	ReplaceRatings(ctx context.Context, id primitive.ObjectID, ratings []Rating) (*Tour, error)
}

func (mdb *MongodbRepo) CreateTour(ctx context.Context, tour *Tour) (*Tour, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := tour.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare tour for creation: %w", err)
	}
	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now
	if tour.Ratings == nil {
		tour.Ratings = []Rating{}
	}
	tour.AverageRating, tour.TotalRatings = RecomputeAggregate(tour.Ratings)

	if _, err := col.InsertOne(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to insert tour: %w", err)
	}
	return tour, nil
}

func (mdb *MongodbRepo) UpdateTour(ctx context.Context, id primitive.ObjectID, tour *Tour) (*Tour, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{
		"$set": bson.M{
			"title":            tour.Title,
			"description":      tour.Description,
			"price":            tour.Price,
			"duration":         tour.Duration,
			"region":           tour.Region,
			"category":         tour.Category,
			"max_participants": tour.MaxParticipants,
			"images":           tour.Images,
			"itinerary":        tour.Itinerary,
			"is_active":        tour.IsActive,
			"updated_at":       time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated Tour
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) GetTourByID(ctx context.Context, id primitive.ObjectID) (*Tour, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var tour Tour
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&tour)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding tour by ID: %w", err)
	}
	return &tour, nil
}

func (mdb *MongodbRepo) ListTours(ctx context.Context, filter TourFilter) ([]*Tour, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if filter.Region != "" {
		query["region"] = filter.Region
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}

	cursor, err := col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []*Tour
	for cursor.Next(ctx) {
		var tour Tour
		if err := cursor.Decode(&tour); err != nil {
			return nil, fmt.Errorf("error decoding tour: %w", err)
		}
		tours = append(tours, &tour)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return tours, nil
}

func (mdb *MongodbRepo) DeactivateTour(ctx context.Context, id primitive.ObjectID) (bool, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"is_active": false, "updated_at": time.Now()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to deactivate tour: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// ReplaceRatings persists a tour's full rating list. The aggregate is
// recomputed here, in the same write, so no caller can store a rating list
// without its derived average and count. Concurrent raters of one tour race
// on this read-modify-write; last writer wins on the full list.
func (mdb *MongodbRepo) ReplaceRatings(ctx context.Context, id primitive.ObjectID, ratings []Rating) (*Tour, error) {
	col, err := mdb.GetCollection(ctx, DbName, TourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	average, count := RecomputeAggregate(ratings)
	update := bson.M{
		"$set": bson.M{
			"ratings":        ratings,
			"average_rating": average,
			"total_ratings":  count,
			"updated_at":     time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated Tour
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update tour ratings: %w", err)
	}
	return &updated, nil
}
