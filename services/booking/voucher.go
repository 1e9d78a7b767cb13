package booking

import (
	"context"
	"math"
	"time"

	voucherRepo "salonix/database/repository/voucher"
	"salonix/models"
)

// appliedVoucher carries the consumed voucher and the amount credited to the
// booking back to the create flow.
type appliedVoucher struct {
	voucher    *models.Voucher
	paidAmount float64
}

// precheckVoucher verifies the voucher exists, is unused, unexpired and
// covers the full total. It runs before the booking is persisted so these
// failures leave no partial state. The check is advisory under concurrency;
// the atomic consume in settleVoucher is the real guard.
func (s *DefaultBookingService) precheckVoucher(ctx context.Context, ref voucherRepo.VoucherRef, totalAmount float64) error {
	voucher, err := s.VoucherRepo.FindUnused(ctx, ref)
	if err != nil {
		if isRepoNotFound(err) {
			return NewNotFoundError("voucher", "Invalid or already used voucher")
		}
		return err
	}
	if time.Now().After(voucher.ExpiresAt) {
		return &ExpiredError{Message: "Voucher has expired"}
	}
	if float64(voucher.Amount) < totalAmount {
		return &InsufficientFundsError{Required: totalAmount, Available: voucher.Amount}
	}
	return nil
}

// settleVoucher consumes the voucher and links it to the already persisted
// booking. The ordering is deliberate: the booking is saved first so the
// voucher is never marked used without a booking existing, then the voucher
// flips used in a single atomic update, then the booking is re-saved with the
// linkage. A concurrent redemption of the same voucher loses at the atomic
// update and surfaces as NotFoundError.
func (s *DefaultBookingService) settleVoucher(ctx context.Context, ref voucherRepo.VoucherRef, booking *models.Booking) (*appliedVoucher, error) {
	voucher, err := s.VoucherRepo.Consume(ctx, ref, booking.ID, time.Now())
	if err != nil {
		if isRepoNotFound(err) {
			return nil, NewNotFoundError("voucher", "Invalid or already used voucher")
		}
		return nil, err
	}

	paid := math.Min(booking.TotalAmount, float64(voucher.Amount))
	if err := s.BookingRepo.SetVoucherPayment(ctx, booking.ID, voucher.ID, paid); err != nil {
		return nil, err
	}

	return &appliedVoucher{voucher: voucher, paidAmount: paid}, nil
}
