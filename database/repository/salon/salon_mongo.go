package salonRepo

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

// MongoSalonRepo implements SalonRepository using MongoDB.
type MongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo creates a new instance of SalonRepository using MongoDB.
func NewMongoSalonRepo() SalonRepository {
	return &MongoSalonRepo{coll: database.Collection("salons")}
}

func (r *MongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var salon models.Salon
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&salon); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch salon with id %s: %w", id, err)
	}
	return &salon, nil
}

func (r *MongoSalonRepo) GetAll(ctx context.Context) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve salons: %w", err)
	}
	defer cursor.Close(ctx)
	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, fmt.Errorf("failed to decode salons: %w", err)
	}
	return salons, nil
}

func (r *MongoSalonRepo) ReplaceServices(ctx context.Context, salonID string, services []models.ServiceEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if services == nil {
		services = []models.ServiceEntry{}
	}
	update := bson.M{"$set": bson.M{"services": services}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": salonID}, update)
	if err != nil {
		return fmt.Errorf("failed to replace services for salon %s: %w", salonID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
