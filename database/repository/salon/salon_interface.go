package salonRepo

import (
	"context"
	"errors"

	"salonix/models"
)

// ErrNotFound is returned when no salon matches the given id.
var ErrNotFound = errors.New("salon not found")

// SalonRepository defines data access for salons.
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	GetAll(ctx context.Context) ([]models.Salon, error)
	// ReplaceServices rewrites the catalog in canonical shape.
	ReplaceServices(ctx context.Context, salonID string, services []models.ServiceEntry) error
}
