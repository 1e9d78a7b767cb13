package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonix/database"
	"salonix/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("failed to ensure booking indexes: %v", err))
	}
	return repo
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) FindActiveSlot(ctx context.Context, workerID string, day time.Time, timeSlot string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := bson.M{
		"workerId": workerID,
		"date":     bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)},
		"timeSlot": timeSlot,
		"status":   bson.M{"$ne": models.BookingStatusCancelled},
	}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query slot %s for worker %s: %w", timeSlot, workerID, err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) FindActiveByWorkerAndDay(ctx context.Context, workerID string, day time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"workerId": workerID,
		"date":     bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)},
		"status":   bson.M{"$ne": models.BookingStatusCancelled},
	}
	return r.find(ctx, filter, nil)
}

func (r *MongoBookingRepo) FindActiveByWorker(ctx context.Context, workerID string) ([]models.Booking, error) {
	filter := bson.M{
		"workerId": workerID,
		"status":   bson.M{"$ne": models.BookingStatusCancelled},
	}
	return r.find(ctx, filter, nil)
}

// listSort orders listings newest date first, earliest slot first within a day.
var listSort = bson.D{{Key: "date", Value: -1}, {Key: "timeSlot", Value: 1}}

func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"userId": userID}, listSort)
}

func (r *MongoBookingRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"salonId": salonID}, listSort)
}

func (r *MongoBookingRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"workerId": workerID}, listSort)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) SetVoucherPayment(ctx context.Context, bookingID, voucherID string, paidAmount float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"voucherUsed": voucherID,
		"paidAmount":  paidAmount,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to record voucher payment on booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{
		"status": models.BookingStatusCancelled,
		"active": false,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
