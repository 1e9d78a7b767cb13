package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "salonix/database/repository/booking"
	salonRepo "salonix/database/repository/salon"
	voucherRepo "salonix/database/repository/voucher"
	workerRepo "salonix/database/repository/worker"
	"salonix/models"
	"salonix/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// isRepoNotFound reports whether the error is any repository's not-found
// sentinel.
func isRepoNotFound(err error) bool {
	return errors.Is(err, workerRepo.ErrNotFound) ||
		errors.Is(err, salonRepo.ErrNotFound) ||
		errors.Is(err, bookingRepo.ErrNotFound) ||
		errors.Is(err, voucherRepo.ErrNotFound)
}

// isRepoDuplicate reports whether the error is the voucher repository's
// duplicate-key sentinel.
func isRepoDuplicate(err error) bool {
	return errors.Is(err, voucherRepo.ErrDuplicate)
}

// parseBookingDate accepts a date-only string or a full RFC 3339 timestamp
// and normalizes it to midnight.
func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return utils.Midnight(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date %q", s)
	}
	return utils.Midnight(t), nil
}

func validateRequest(req models.BookingRequest) error {
	switch {
	case req.SalonID == "", req.WorkerID == "", req.Service == "", req.Date == "",
		req.TimeSlot == "", req.ClientName == "", req.ClientEmail == "", req.ClientPhone == "":
		return NewValidationError("All fields are required except userId")
	}
	if _, err := uuid.Parse(req.SalonID); err != nil {
		return NewValidationError("Invalid ID format")
	}
	if _, err := uuid.Parse(req.WorkerID); err != nil {
		return NewValidationError("Invalid ID format")
	}
	if req.UserID != "" {
		if _, err := uuid.Parse(req.UserID); err != nil {
			return NewValidationError("Invalid ID format")
		}
	}
	return nil
}

// CreateBooking validates the request, re-checks the slot for a race-induced
// conflict, persists the booking and settles the chosen payment method. The
// storage layer's unique index is the final arbiter of slot conflicts; the
// explicit pre-check only produces friendlier failures for the common case.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	day, err := parseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}

	worker, err := s.WorkerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if isRepoNotFound(err) {
			return nil, NewNotFoundError("worker", "Worker not found")
		}
		return nil, err
	}

	salon, err := s.SalonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if isRepoNotFound(err) {
			return nil, NewNotFoundError("salon", "Salon not found")
		}
		return nil, err
	}

	if worker.SalonID != req.SalonID {
		return nil, NewValidationError("Worker is not associated with the salon")
	}

	warning := serviceWarning(worker.Services, req.Service)
	if warning != "" {
		logger.Info("booking requested for unlisted service",
			zap.String("workerId", worker.ID),
			zap.String("service", req.Service))
	}

	// Fast-path conflict check; the unique index catches whatever slips past.
	if _, err := s.BookingRepo.FindActiveSlot(ctx, req.WorkerID, day, req.TimeSlot); err == nil {
		return nil, &ConflictError{Message: "This time slot is already booked"}
	} else if !isRepoNotFound(err) {
		return nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodLocation
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		SalonID:       req.SalonID,
		WorkerID:      req.WorkerID,
		Service:       req.Service,
		Date:          day,
		TimeSlot:      req.TimeSlot,
		Status:        models.BookingStatusConfirmed,
		Active:        true,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		PaymentMethod: paymentMethod,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    0,
		CreatedAt:     time.Now(),
	}

	useVoucher := paymentMethod == models.PaymentMethodVoucher && (req.VoucherID != "" || req.VoucherCode != "")
	ref := voucherRepo.VoucherRef{ID: req.VoucherID, Code: req.VoucherCode}

	// Voucher validity is checked before any persistence so expiry and
	// insufficient-funds failures leave no side effects behind.
	if useVoucher {
		if err := s.precheckVoucher(ctx, ref, req.TotalAmount); err != nil {
			return nil, err
		}
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, &ConflictError{Message: "This time slot is already booked"}
		}
		return nil, err
	}

	result := &models.BookingResult{Warning: warning}

	if useVoucher {
		applied, err := s.settleVoucher(ctx, ref, booking)
		if err != nil {
			// The booking exists but could not be paid; release the slot
			// before surfacing the settlement failure.
			if cancelErr := s.BookingRepo.Cancel(ctx, booking.ID); cancelErr != nil {
				logger.Error("failed to release booking after voucher settlement failure",
					zap.String("bookingId", booking.ID), zap.Error(cancelErr))
			}
			return nil, err
		}
		booking.VoucherUsed = applied.voucher.ID
		booking.PaidAmount = applied.paidAmount
		result.VoucherUsed = &models.AppliedVoucher{
			Code:      applied.voucher.Code,
			Amount:    applied.voucher.Amount,
			Remaining: float64(applied.voucher.Amount) - req.TotalAmount,
		}
	}

	// The denormalized write is best-effort: occupancy unions both sources,
	// so a missed cache entry cannot cause a double booking.
	cacheEntry := models.WorkerBooking{Date: day, TimeSlot: req.TimeSlot, CreatedAt: time.Now()}
	if err := s.WorkerRepo.AppendBooking(ctx, worker.ID, cacheEntry); err != nil {
		logger.Warn("failed to append worker booking cache entry",
			zap.String("workerId", worker.ID), zap.Error(err))
	}

	s.invalidateSlotCache(ctx, worker.ID, day)

	if s.Mail != nil {
		s.Mail.BookingCreated(*booking)
	}

	result.Booking = models.BookingSummary{
		ID:            booking.ID,
		Date:          booking.Date,
		TimeSlot:      booking.TimeSlot,
		Service:       booking.Service,
		Status:        booking.Status,
		PaymentMethod: booking.PaymentMethod,
		TotalAmount:   booking.TotalAmount,
		PaidAmount:    booking.PaidAmount,
		Worker:        worker.Summary(),
		Salon:         salon.Summary(),
	}
	return result, nil
}

func (s *DefaultBookingService) invalidateSlotCache(ctx context.Context, workerID string, day time.Time) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, slotCacheKey(workerID, day)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate slot cache",
			zap.String("workerId", workerID), zap.Error(err))
	}
}
