package salonRepo

import (
	"context"
	"fmt"
	"time"

	"salonq/database"
	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo() SalonRepository {
	coll := database.DB().Collection("salons")
	repo := &MongoSalonRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries, including the
// 2dsphere index backing the nearby lookup.
func (r *MongoSalonRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a salon by its unique ID, or nil if absent.
func (r *MongoSalonRepo) GetByID(id string) (*models.Salon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch salon with id %s: %w", id, err)
	}
	return &salon, nil
}

// GetAll retrieves salons, optionally filtered by status.
func (r *MongoSalonRepo) GetAll(status string) ([]models.Salon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve salons: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	for cursor.Next(ctx) {
		var s models.Salon
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode salon: %w", err)
		}
		salons = append(salons, s)
	}
	return salons, nil
}

// FindNearby retrieves approved salons within radiusMeters of the given point.
func (r *MongoSalonRepo) FindNearby(longitude, latitude, radiusMeters float64) ([]models.Salon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.SalonStatusApproved,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{longitude, latitude},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to run nearby salon query: %w", err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	for cursor.Next(ctx) {
		var s models.Salon
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode salon: %w", err)
		}
		salons = append(salons, s)
	}
	return salons, nil
}

// Create inserts a new salon document.
func (r *MongoSalonRepo) Create(salon *models.Salon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, salon)
	if err != nil {
		return fmt.Errorf("failed to create salon: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set update to a salon document.
func (r *MongoSalonRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update salon with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("salon with id %s not found", id)
	}
	return nil
}

// IncQueueCount atomically adjusts queue_count by delta as a relative update, never a
// read-modify-write. Decrements only match while the count is still positive.
func (r *MongoSalonRepo) IncQueueCount(id string, delta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if delta < 0 {
		filter["queue_count"] = bson.M{"$gt": 0}
	}
	update := bson.M{
		"$inc": bson.M{"queue_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}

	_, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to adjust queue count for salon %s: %w", id, err)
	}
	return nil
}

// SetQueueCount overwrites queue_count. Used by the reconciliation job only.
func (r *MongoSalonRepo) SetQueueCount(id string, count int) error {
	return r.UpdateSetDocument(id, bson.M{"queue_count": count})
}
