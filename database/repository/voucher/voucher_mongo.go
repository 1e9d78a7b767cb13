package voucherRepo

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

// MongoVoucherRepo implements VoucherRepository using MongoDB.
type MongoVoucherRepo struct {
	coll *mongo.Collection
}

// NewMongoVoucherRepo creates a new instance of VoucherRepository using MongoDB.
func NewMongoVoucherRepo() VoucherRepository {
	repo := &MongoVoucherRepo{coll: database.Collection("vouchers")}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("failed to ensure voucher indexes: %v", err))
	}
	return repo
}

func (r *MongoVoucherRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	codeIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	paymentIntentIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "paymentIntentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	userUsedIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "used", Value: 1}},
	}
	expiryIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "expiresAt", Value: 1}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		codeIdx, paymentIntentIdx, userUsedIdx, expiryIdx,
	})
	if err != nil {
		return fmt.Errorf("failed to create voucher indexes: %w", err)
	}
	return nil
}

func (r *MongoVoucherRepo) Create(ctx context.Context, voucher *models.Voucher) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, voucher); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create voucher: %w", err)
	}
	return nil
}

func (r *MongoVoucherRepo) GetByID(ctx context.Context, id string) (*models.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var voucher models.Voucher
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&voucher); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch voucher with id %s: %w", id, err)
	}
	return &voucher, nil
}

func refFilter(ref VoucherRef) bson.M {
	if ref.ID != "" {
		return bson.M{"_id": ref.ID}
	}
	return bson.M{"code": ref.Code}
}

func (r *MongoVoucherRepo) FindUnused(ctx context.Context, ref VoucherRef) (*models.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := refFilter(ref)
	filter["used"] = false
	var voucher models.Voucher
	if err := r.coll.FindOne(ctx, filter).Decode(&voucher); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query unused voucher: %w", err)
	}
	return &voucher, nil
}

// Consume uses a single findAndModify so two bookings racing for the same
// voucher cannot both redeem it: the used=false filter and the used=true write
// are one storage operation.
func (r *MongoVoucherRepo) Consume(ctx context.Context, ref VoucherRef, bookingID string, at time.Time) (*models.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	filter := refFilter(ref)
	filter["used"] = false
	update := bson.M{"$set": bson.M{
		"used":           true,
		"usedAt":         at,
		"usedForBooking": bookingID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var voucher models.Voucher
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&voucher); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume voucher: %w", err)
	}
	return &voucher, nil
}

func (r *MongoVoucherRepo) ListByUser(ctx context.Context, userID string) ([]models.Voucher, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)
	var vouchers []models.Voucher
	if err := cursor.All(ctx, &vouchers); err != nil {
		return nil, fmt.Errorf("failed to decode vouchers: %w", err)
	}
	return vouchers, nil
}

func (r *MongoVoucherRepo) ExistsForPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"paymentIntentId": paymentIntentID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check voucher for payment intent %s: %w", paymentIntentID, err)
	}
	return count > 0, nil
}

func (r *MongoVoucherRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	count, err := r.coll.CountDocuments(ctx, bson.M{"code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check voucher code: %w", err)
	}
	return count > 0, nil
}
