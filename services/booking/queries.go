package booking

import (
	"context"

	"salonix/models"
	"salonix/utils"

	"go.uber.org/zap"
)

// ListUserBookings returns a user's bookings with worker and salon summaries
// and the consumed voucher resolved.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(ctx, bookings, true, true, false), nil
}

// ListSalonBookings returns a salon's bookings with worker summaries and
// client contact details for the salon's staff view.
func (s *DefaultBookingService) ListSalonBookings(ctx context.Context, salonID string) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(ctx, bookings, true, false, true), nil
}

// ListWorkerBookings returns a worker's raw booking rows.
func (s *DefaultBookingService) ListWorkerBookings(ctx context.Context, workerID string) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return s.assembleDetails(ctx, bookings, false, false, true), nil
}

func (s *DefaultBookingService) assembleDetails(ctx context.Context, bookings []models.Booking, withWorker, withSalon, withClient bool) []models.BookingDetail {
	logger := utils.GetLogger()

	workers := make(map[string]*models.Worker)
	salons := make(map[string]*models.Salon)
	details := make([]models.BookingDetail, 0, len(bookings))

	for _, b := range bookings {
		detail := models.BookingDetail{
			ID:            b.ID,
			Date:          b.Date,
			TimeSlot:      b.TimeSlot,
			Service:       b.Service,
			Status:        b.Status,
			PaymentMethod: b.PaymentMethod,
			TotalAmount:   b.TotalAmount,
			PaidAmount:    b.PaidAmount,
		}
		if withClient {
			detail.ClientName = b.ClientName
			detail.ClientEmail = b.ClientEmail
			detail.ClientPhone = b.ClientPhone
		}

		if b.VoucherUsed != "" {
			if voucher, err := s.VoucherRepo.GetByID(ctx, b.VoucherUsed); err == nil {
				detail.VoucherUsed = &models.AppliedVoucher{Code: voucher.Code, Amount: voucher.Amount}
			} else {
				logger.Warn("failed to resolve voucher reference",
					zap.String("bookingId", b.ID), zap.Error(err))
			}
		}

		if withWorker {
			worker, ok := workers[b.WorkerID]
			if !ok {
				worker, _ = s.WorkerRepo.GetByID(ctx, b.WorkerID)
				workers[b.WorkerID] = worker
			}
			if worker != nil {
				summary := worker.Summary()
				detail.Worker = &summary
			}
		}
		if withSalon {
			salon, ok := salons[b.SalonID]
			if !ok {
				salon, _ = s.SalonRepo.GetByID(ctx, b.SalonID)
				salons[b.SalonID] = salon
			}
			if salon != nil {
				summary := salon.Summary()
				detail.Salon = &summary
			}
		}

		details = append(details, detail)
	}
	return details
}
