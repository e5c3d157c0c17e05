package queueRepo

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

// MongoQueueRepo implements QueueRepository using MongoDB.
type MongoQueueRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoQueueRepo creates a new instance of QueueRepository using MongoDB.
func NewMongoQueueRepo() QueueRepository {
	db := database.DB()
	repo := &MongoQueueRepo{
		coll:     db.Collection("queue_entries"),
		counters: db.Collection("counters"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQueueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// Queue numbers are unique per salon; the index backs both the invariant and
		// the salon queue listing order.
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "queue_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "salon_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "customer_phone", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a queue entry by its unique ID, or nil if absent.
func (r *MongoQueueRepo) GetByID(id string) (*models.QueueEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var entry models.QueueEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch queue entry with id %s: %w", id, err)
	}
	return &entry, nil
}

// ListBySalon retrieves a salon's entries, newest first.
func (r *MongoQueueRepo) ListBySalon(salonID string, statuses []string) ([]models.QueueEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"salon_id": salonID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().SetSort(bson.D{{Key: "queue_number", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve queue entries for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	return decodeEntries(ctx, cursor)
}

// ListByPhone retrieves a customer's entries across salons, newest first.
func (r *MongoQueueRepo) ListByPhone(phone string) ([]models.QueueEntry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"customer_phone": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve queue entries for phone %s: %w", phone, err)
	}
	defer cursor.Close(ctx)

	return decodeEntries(ctx, cursor)
}

func decodeEntries(ctx context.Context, cursor *mongo.Cursor) ([]models.QueueEntry, error) {
	var entries []models.QueueEntry
	for cursor.Next(ctx) {
		var e models.QueueEntry
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode queue entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Create inserts a new queue entry document.
func (r *MongoQueueRepo) Create(entry *models.QueueEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to create queue entry: %w", err)
	}
	return nil
}

// CountActive counts the salon's entries in a non-terminal status.
func (r *MongoQueueRepo) CountActive(salonID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"salon_id": salonID,
		"status":   bson.M{"$nin": terminalStatuses()},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count active entries for salon %s: %w", salonID, err)
	}
	return count, nil
}

// CountCreatedSince counts the salon's entries created at or after the cutoff.
func (r *MongoQueueRepo) CountCreatedSince(salonID string, since time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"salon_id":   salonID,
		"created_at": bson.M{"$gte": since},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries for salon %s: %w", salonID, err)
	}
	return count, nil
}

// PaidRevenueSince sums snapshotted service prices of entries paid since the cutoff.
func (r *MongoQueueRepo) PaidRevenueSince(salonID string, since time.Time) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"salon_id":       salonID,
			"payment.status": models.PaymentStatusPaid,
			"payment.paid_at": bson.M{
				"$gte": since,
			},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"total": bson.M{"$sum": "$services.price"},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$total"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue for salon %s: %w", salonID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Revenue float64 `bson:"revenue"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
		}
	}
	return result.Revenue, nil
}

// ActiveCountsBySalon returns non-terminal entry counts keyed by salon ID.
func (r *MongoQueueRepo) ActiveCountsBySalon() (map[string]int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status": bson.M{"$nin": terminalStatuses()},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$salon_id",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate active counts: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			SalonID string `bson:"_id"`
			Count   int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode active count row: %w", err)
		}
		counts[row.SalonID] = row.Count
	}
	return counts, nil
}

// TransitionStatus applies the update only while the entry is still in one of the
// allowedFrom statuses, and returns the pre-update document. A concurrent transition
// that got there first makes this a no-op, which is what keeps the salon's queue
// counter from being decremented twice.
func (r *MongoQueueRepo) TransitionStatus(id string, allowedFrom []string, set bson.M) (*models.QueueEntry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if len(allowedFrom) > 0 {
		filter["status"] = bson.M{"$in": allowedFrom}
	}
	set["updated_at"] = time.Now()
	update := bson.M{"$set": set}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)
	var previous models.QueueEntry
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&previous)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to transition queue entry %s: %w", id, err)
	}
	return &previous, nil
}

// SetPayment records payment correlation fields without touching the lifecycle.
func (r *MongoQueueRepo) SetPayment(id string, payment models.PaymentInfo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"payment":    payment,
		"updated_at": time.Now(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to record payment on queue entry %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("queue entry with id %s not found", id)
	}
	return nil
}

func terminalStatuses() []string {
	return []string{models.StatusCompleted, models.StatusCancelled, models.StatusRejected}
}
