package booking

import (
	"context"
	"testing"
	"time"

	"salonix/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingReleasesSlot(t *testing.T) {
	f := newBookingFixture()

	result, err := f.svc.CreateBooking(context.Background(), f.request())
	require.NoError(t, err)
	require.Len(t, f.worker.Bookings, 1)

	cancelled, err := f.svc.CancelBooking(context.Background(), result.Booking.ID)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCancelled, cancelled.Booking.Status)
	assert.False(t, cancelled.VoucherRestored)
	assert.Empty(t, f.worker.Bookings)

	require.Len(t, f.mail.cancelled, 1)

	// The slot is bookable again.
	req := f.request()
	req.ClientName = "Maria Ionescu"
	req.ClientEmail = "maria@example.com"
	_, err = f.svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCancelBookingRestoresVoucherValue(t *testing.T) {
	f := newBookingFixture()
	voucher := f.addVoucher(200, time.Now().Add(30*24*time.Hour))

	req := f.request()
	req.PaymentMethod = models.PaymentMethodVoucher
	req.VoucherID = voucher.ID
	req.TotalAmount = 150

	result, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	cancelled, err := f.svc.CancelBooking(context.Background(), result.Booking.ID)
	require.NoError(t, err)
	assert.True(t, cancelled.VoucherRestored)

	// The original voucher stays spent; a fresh one carries the value.
	original := f.voucher.vouchers[voucher.ID]
	assert.True(t, original.Used)

	var replacement *models.Voucher
	for _, v := range f.voucher.vouchers {
		if v.ID != voucher.ID {
			replacement = v
		}
	}
	require.NotNil(t, replacement)
	assert.False(t, replacement.Used)
	assert.Equal(t, int64(200), replacement.Amount)
	assert.Equal(t, voucher.UserID, replacement.UserID)
	assert.NotEqual(t, voucher.Code, replacement.Code)
	assert.Contains(t, replacement.PaymentIntentID, "restored_")
	assert.WithinDuration(t, time.Now().Add(models.VoucherValidity), replacement.ExpiresAt, time.Minute)
}

func TestCancelBookingTwiceRejected(t *testing.T) {
	f := newBookingFixture()
	voucher := f.addVoucher(200, time.Now().Add(30*24*time.Hour))

	req := f.request()
	req.PaymentMethod = models.PaymentMethodVoucher
	req.VoucherID = voucher.ID
	req.TotalAmount = 150

	result, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), result.Booking.ID)
	require.NoError(t, err)
	require.Len(t, f.voucher.vouchers, 2)

	_, err = f.svc.CancelBooking(context.Background(), result.Booking.ID)

	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "Booking is already cancelled", stateErr.Message)

	// No second replacement voucher was minted.
	assert.Len(t, f.voucher.vouchers, 2)
}

func TestCancelBookingNotFound(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.CancelBooking(context.Background(), uuid.New().String())

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCancelBookingInvalidID(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.CancelBooking(context.Background(), "not-a-uuid")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
