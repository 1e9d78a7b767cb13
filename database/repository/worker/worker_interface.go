package workerRepo

import (
	"context"
	"errors"
	"time"

	"salonix/models"
)

// ErrNotFound is returned when no worker matches the given id.
var ErrNotFound = errors.New("worker not found")

// WorkerRepository defines data access for workers, including the denormalized
// per-worker booking cache. Cache mutations are atomic array updates rather
// than whole-document rewrites so concurrent bookings cannot lose entries.
type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	GetAll(ctx context.Context) ([]models.Worker, error)
	// AppendBooking pushes a cache entry onto worker.bookings. Duplicates are
	// not filtered at write time; occupancy reads tolerate them.
	AppendBooking(ctx context.Context, workerID string, entry models.WorkerBooking) error
	// RemoveBooking pulls every cache entry matching the given day and slot.
	RemoveBooking(ctx context.Context, workerID string, day time.Time, timeSlot string) error
	// ReplaceBookings overwrites the whole cache, used by reconciliation.
	ReplaceBookings(ctx context.Context, workerID string, entries []models.WorkerBooking) error
	// ReplaceServices rewrites the service list in canonical shape.
	ReplaceServices(ctx context.Context, workerID string, services []models.ServiceEntry) error
}
