package booking

import (
	"context"
	"fmt"
	"time"

	"salonix/models"
	"salonix/utils"
)

// occupiedSlots computes the set of "HH:00" labels already taken for the
// worker on the given day. It unions the authoritative booking collection
// with the worker's denormalized cache: the cache can lag the collection
// under concurrent writes or partial failures, and unioning biases toward
// under-booking rather than double-booking.
func (s *DefaultSlotService) occupiedSlots(ctx context.Context, worker *models.Worker, day time.Time) (map[string]struct{}, error) {
	occupied := make(map[string]struct{})

	bookings, err := s.BookingRepo.FindActiveByWorkerAndDay(ctx, worker.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for worker %s: %w", worker.ID, err)
	}
	for _, b := range bookings {
		occupied[b.TimeSlot] = struct{}{}
	}

	for _, cached := range worker.Bookings {
		if utils.SameDay(cached.Date, day) {
			occupied[cached.TimeSlot] = struct{}{}
		}
	}

	return occupied, nil
}
