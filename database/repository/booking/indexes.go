package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the booking collection relies on. The
// partial unique index on (workerId, date, timeSlot) over active bookings is
// the storage-level guarantee that two concurrent creates for the same slot
// cannot both succeed; the application-level conflict check is only a fast
// path in front of it.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	activeSlotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "workerId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "timeSlot", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"active": true}),
	}
	workerDateIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "workerId", Value: 1}, {Key: "date", Value: 1}},
	}
	userIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	}
	salonIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "salonId", Value: 1}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		activeSlotIdx, workerDateIdx, userIdx, salonIdx,
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
