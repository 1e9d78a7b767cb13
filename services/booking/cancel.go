package booking

import (
	"context"
	"fmt"
	"time"

	"salonix/models"
	"salonix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CancelBooking flips a booking to cancelled and compensates for its side
// effects: a consumed voucher is replaced with freshly minted value (the
// original stays spent) and the worker's cache entry is retracted
// best-effort. Cancelling an already-cancelled booking is rejected so a
// replacement voucher can never be minted twice.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.CancelResult, error) {
	logger := utils.GetLogger()

	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, NewValidationError("Invalid booking ID format")
	}

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if isRepoNotFound(err) {
			return nil, NewNotFoundError("booking", "Booking not found")
		}
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, &InvalidStateError{Message: "Booking is already cancelled"}
	}

	voucherRestored := false
	if booking.VoucherUsed != "" {
		if err := s.restoreVoucherValue(ctx, booking); err != nil {
			return nil, err
		}
		voucherRestored = true
	}

	if err := s.BookingRepo.Cancel(ctx, bookingID); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCancelled
	booking.Active = false

	// Cache cleanup is advisory: the authoritative record is already
	// cancelled, and occupancy reads tolerate a stale cache entry only until
	// reconciliation.
	day := utils.Midnight(booking.Date)
	if err := s.WorkerRepo.RemoveBooking(ctx, booking.WorkerID, day, booking.TimeSlot); err != nil {
		logger.Warn("failed to remove worker booking cache entry",
			zap.String("workerId", booking.WorkerID),
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}

	s.invalidateSlotCache(ctx, booking.WorkerID, day)

	if s.Mail != nil {
		s.Mail.BookingCancelled(*booking)
	}

	return &models.CancelResult{Booking: *booking, VoucherRestored: voucherRestored}, nil
}

// restoreVoucherValue mints a brand-new voucher carrying the consumed
// voucher's amount. History is never unspent: the original voucher keeps
// used=true and its booking linkage.
func (s *DefaultBookingService) restoreVoucherValue(ctx context.Context, booking *models.Booking) error {
	original, err := s.VoucherRepo.GetByID(ctx, booking.VoucherUsed)
	if err != nil {
		if isRepoNotFound(err) {
			return NewNotFoundError("voucher", "Consumed voucher not found")
		}
		return err
	}

	now := time.Now()
	replacement := &models.Voucher{
		ID:              uuid.New().String(),
		Amount:          original.Amount,
		UserID:          original.UserID,
		PaymentIntentID: fmt.Sprintf("restored_%d", now.UnixMilli()),
		CreatedAt:       now,
		ExpiresAt:       now.Add(models.VoucherValidity),
	}

	if err := s.createWithUniqueCode(ctx, replacement); err != nil {
		return fmt.Errorf("failed to mint replacement voucher: %w", err)
	}

	utils.GetLogger().Info("replacement voucher minted",
		zap.String("bookingId", booking.ID),
		zap.String("code", replacement.Code),
		zap.Int64("amount", replacement.Amount))
	return nil
}

// createWithUniqueCode retries code generation on collision; the unique index
// on vouchers.code is the authority.
func (s *DefaultBookingService) createWithUniqueCode(ctx context.Context, voucher *models.Voucher) error {
	const maxAttempts = 10
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		voucher.Code = models.GenerateVoucherCode()
		err = s.VoucherRepo.Create(ctx, voucher)
		if err == nil {
			return nil
		}
		if !isRepoDuplicate(err) {
			return err
		}
	}
	return fmt.Errorf("could not generate a unique voucher code: %w", err)
}
