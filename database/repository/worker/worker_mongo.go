package workerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonix/database"
	"salonix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo creates a new instance of WorkerRepository using MongoDB.
func NewMongoWorkerRepo() WorkerRepository {
	return &MongoWorkerRepo{coll: database.Collection("workers")}
}

func (r *MongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var worker models.Worker
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch worker with id %s: %w", id, err)
	}
	return &worker, nil
}

func (r *MongoWorkerRepo) GetAll(ctx context.Context) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve workers: %w", err)
	}
	defer cursor.Close(ctx)
	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("failed to decode workers: %w", err)
	}
	return workers, nil
}

func (r *MongoWorkerRepo) AppendBooking(ctx context.Context, workerID string, entry models.WorkerBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$push": bson.M{"bookings": entry}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to append booking cache entry for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWorkerRepo) RemoveBooking(ctx context.Context, workerID string, day time.Time, timeSlot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	// Cache entries carry full timestamps; match anything within the day.
	nextDay := day.AddDate(0, 0, 1)
	update := bson.M{"$pull": bson.M{"bookings": bson.M{
		"date":     bson.M{"$gte": day, "$lt": nextDay},
		"timeSlot": timeSlot,
	}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove booking cache entry for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWorkerRepo) ReplaceBookings(ctx context.Context, workerID string, entries []models.WorkerBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if entries == nil {
		entries = []models.WorkerBooking{}
	}
	update := bson.M{"$set": bson.M{"bookings": entries}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace booking cache for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWorkerRepo) ReplaceServices(ctx context.Context, workerID string, services []models.ServiceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if services == nil {
		services = []models.ServiceEntry{}
	}
	update := bson.M{"$set": bson.M{"services": services}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": workerID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace services for worker %s: %w", workerID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
