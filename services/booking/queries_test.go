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

func TestListUserBookingsJoinsSummaries(t *testing.T) {
	f := newBookingFixture()
	userID := uuid.New().String()

	req := f.request()
	req.UserID = userID
	result, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	details, err := f.svc.ListUserBookings(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	assert.Equal(t, result.Booking.ID, details[0].ID)
	require.NotNil(t, details[0].Worker)
	assert.Equal(t, "Ana", details[0].Worker.Name)
	require.NotNil(t, details[0].Salon)
	assert.Equal(t, "Studio Andreea", details[0].Salon.Name)
	// The user view carries no client contact fields.
	assert.Empty(t, details[0].ClientName)
}

func TestListSalonBookingsIncludesClientDetails(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.CreateBooking(context.Background(), f.request())
	require.NoError(t, err)

	details, err := f.svc.ListSalonBookings(context.Background(), f.salon.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	assert.Equal(t, "Ion Georgescu", details[0].ClientName)
	assert.Equal(t, "ion@example.com", details[0].ClientEmail)
	require.NotNil(t, details[0].Worker)
	assert.Nil(t, details[0].Salon)
}

func TestListWorkerBookingsResolvesVoucher(t *testing.T) {
	f := newBookingFixture()
	voucher := f.addVoucher(200, time.Now().Add(30*24*time.Hour))

	req := f.request()
	req.PaymentMethod = models.PaymentMethodVoucher
	req.VoucherID = voucher.ID
	req.TotalAmount = 150

	_, err := f.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	details, err := f.svc.ListWorkerBookings(context.Background(), f.worker.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	require.NotNil(t, details[0].VoucherUsed)
	assert.Equal(t, voucher.Code, details[0].VoucherUsed.Code)
	assert.Equal(t, int64(200), details[0].VoucherUsed.Amount)
	assert.Nil(t, details[0].Worker)
	assert.Equal(t, "Ion Georgescu", details[0].ClientName)
}

func TestListUserBookingsEmpty(t *testing.T) {
	f := newBookingFixture()

	details, err := f.svc.ListUserBookings(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, details)
}
