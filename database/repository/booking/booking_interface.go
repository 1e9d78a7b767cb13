package bookingRepo

import (
	"context"
	"errors"
	"time"

	"salonix/models"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when inserting a booking whose
	// (workerId, date, timeSlot) already has an active booking. The unique
	// partial index is what raises it, so concurrent creates cannot both win.
	ErrSlotTaken = errors.New("slot already booked")
)

// BookingRepository defines data access for the authoritative booking records.
type BookingRepository interface {
	// Create inserts a new booking. Returns ErrSlotTaken if an active booking
	// already occupies the same worker/date/slot.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindActiveSlot returns the active booking at (workerID, day, timeSlot),
	// or ErrNotFound. Day is a midnight-truncated date.
	FindActiveSlot(ctx context.Context, workerID string, day time.Time, timeSlot string) (*models.Booking, error)
	// FindActiveByWorkerAndDay returns all active bookings for a worker on a
	// single day, for occupancy computation.
	FindActiveByWorkerAndDay(ctx context.Context, workerID string, day time.Time) ([]models.Booking, error)
	// FindActiveByWorker returns every active booking for a worker, used by
	// cache reconciliation.
	FindActiveByWorker(ctx context.Context, workerID string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error)
	ListByWorker(ctx context.Context, workerID string) ([]models.Booking, error)
	// SetVoucherPayment links a consumed voucher to the booking and records
	// the paid amount.
	SetVoucherPayment(ctx context.Context, bookingID, voucherID string, paidAmount float64) error
	// Cancel flips the booking to cancelled and clears its active flag,
	// releasing the slot in the unique index.
	Cancel(ctx context.Context, bookingID string) error
}
