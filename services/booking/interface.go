package booking

import (
	"context"
	"time"

	bookingRepo "salonix/database/repository/booking"
	salonRepo "salonix/database/repository/salon"
	voucherRepo "salonix/database/repository/voucher"
	workerRepo "salonix/database/repository/worker"
	"salonix/models"

	"github.com/go-redis/redis/v8"
)

// SlotService answers available-slot queries.
type SlotService interface {
	// AvailableSlots returns the bookable hourly slots for a worker on a
	// date, with an advisory warning when the requested service does not
	// match the worker's catalog.
	AvailableSlots(ctx context.Context, workerID string, date time.Time, service string) (*models.SlotAvailability, error)
}

// BookingService creates, cancels and lists bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.CancelResult, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error)
	ListSalonBookings(ctx context.Context, salonID string) ([]models.BookingDetail, error)
	ListWorkerBookings(ctx context.Context, workerID string) ([]models.BookingDetail, error)
}

// Notifier dispatches fire-and-forget notifications about booking lifecycle
// events. Implementations must not block the booking flow on delivery.
type Notifier interface {
	BookingCreated(booking models.Booking)
	BookingCancelled(booking models.Booking)
}

// DefaultSlotService implements SlotService. Cache is optional; when set,
// computed slot lists are cached briefly and invalidated on booking mutations.
type DefaultSlotService struct {
	WorkerRepo  workerRepo.WorkerRepository
	SalonRepo   salonRepo.SalonRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client
}

// DefaultBookingService implements BookingService. Mail and Cache are
// optional collaborators.
type DefaultBookingService struct {
	WorkerRepo  workerRepo.WorkerRepository
	SalonRepo   salonRepo.SalonRepository
	BookingRepo bookingRepo.BookingRepository
	VoucherRepo voucherRepo.VoucherRepository
	Cache       *redis.Client
	Mail        Notifier
}
