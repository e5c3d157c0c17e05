package queueRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NextQueueNumber atomically increments and returns the per-salon counter document.
// The upserted findAndModify is the only writer of the counter, so two simultaneous
// check-ins for the same salon can never observe the same value.
func (r *MongoQueueRepo) NextQueueNumber(salonID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"_id": "queue:" + salonID}
	update := bson.M{"$inc": bson.M{"seq": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := r.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to advance queue counter for salon %s: %w", salonID, err)
	}
	return counter.Seq, nil
}
