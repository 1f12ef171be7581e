package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedTourRepo interface {
	SaveTour(ctx context.Context, saved *SavedTour) (*SavedTour, error)
	HasSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error)
	RemoveSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error)
	GetSavedToursByUser(ctx context.Context, userID primitive.ObjectID) ([]*SavedTour, error)
}

func (mdb *MongodbRepo) SaveTour(ctx context.Context, saved *SavedTour) (*SavedTour, error) {
	col, err := mdb.GetCollection(ctx, DbName, SavedTourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := saved.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare saved tour for creation: %w", err)
	}
	if _, err := col.InsertOne(ctx, saved); err != nil {
		return nil, translateSaveTourErr(err)
	}
	return saved, nil
}

// translateSaveTourErr maps a unique (user_id, tour_id) index violation onto
// the domain duplicate error. The index backs the service-level pre-check, so
// a tripped constraint surfaces the same way a pre-check hit does.
func translateSaveTourErr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateError{Resource: "Saved tour"}
	}
	return fmt.Errorf("failed to insert saved tour: %w", err)
}

func (mdb *MongodbRepo) HasSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error) {
	col, err := mdb.GetCollection(ctx, DbName, SavedTourColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	err = col.FindOne(ctx, bson.M{"user_id": userID, "tour_id": tourID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking saved tour: %w", err)
	}
	return true, nil
}

func (mdb *MongodbRepo) RemoveSavedTour(ctx context.Context, userID, tourID primitive.ObjectID) (bool, error) {
	col, err := mdb.GetCollection(ctx, DbName, SavedTourColName)
	if err != nil {
		return false, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"user_id": userID, "tour_id": tourID})
	if err != nil {
		return false, fmt.Errorf("failed to delete saved tour: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (mdb *MongodbRepo) GetSavedToursByUser(ctx context.Context, userID primitive.ObjectID) ([]*SavedTour, error) {
	col, err := mdb.GetCollection(ctx, DbName, SavedTourColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding saved tours: %w", err)
	}
	defer cursor.Close(ctx)

	var saved []*SavedTour
	for cursor.Next(ctx) {
		var s SavedTour
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding saved tour: %w", err)
		}
		saved = append(saved, &s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return saved, nil
}
