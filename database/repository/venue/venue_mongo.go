package venueRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "venues"

// MongoVenueRepo implements VenueRepository using MongoDB.
type MongoVenueRepo struct {
	coll *mongo.Collection
}

// NewMongoVenueRepo creates a venue repository on the given database.
func NewMongoVenueRepo(db *mongo.Database) *MongoVenueRepo {
	return &MongoVenueRepo{coll: db.Collection(collectionName)}
}

func (r *MongoVenueRepo) GetByID(ctx context.Context, id string) (*models.Venue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrVenueNotFound, id)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var venue models.Venue
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&venue); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch venue with id %s: %w", id, err)
	}
	return &venue, nil
}

// GetAll returns the catalog sorted by name.
func (r *MongoVenueRepo) GetAll(ctx context.Context) ([]models.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve venues: %w", err)
	}
	defer cursor.Close(ctx)

	venues := []models.Venue{}
	for cursor.Next(ctx) {
		var v models.Venue
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return venues, nil
}

func (r *MongoVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if venue.ID.IsZero() {
		venue.ID = primitive.NewObjectID()
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		return fmt.Errorf("failed to create venue: %w", err)
	}
	return nil
}

// EnsureIndexes creates indexes for the fields the catalog sorts and filters on.
func (r *MongoVenueRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
