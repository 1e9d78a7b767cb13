package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salonix/models"
	"salonix/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSlotService struct {
	result *models.SlotAvailability
	err    error
}

func (s *stubSlotService) AvailableSlots(ctx context.Context, workerID string, date time.Time, service string) (*models.SlotAvailability, error) {
	return s.result, s.err
}

type stubBookingService struct {
	createResult *models.BookingResult
	cancelResult *models.CancelResult
	err          error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	return s.createResult, s.err
}

func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.CancelResult, error) {
	return s.cancelResult, s.err
}

func (s *stubBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	return nil, s.err
}

func (s *stubBookingService) ListSalonBookings(ctx context.Context, salonID string) ([]models.BookingDetail, error) {
	return nil, s.err
}

func (s *stubBookingService) ListWorkerBookings(ctx context.Context, workerID string) ([]models.BookingDetail, error) {
	return nil, s.err
}

func performRequest(method, target, body string, params gin.Params, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func TestGetAvailableSlotsRequiresParams(t *testing.T) {
	SlotService = &stubSlotService{}

	w := performRequest(http.MethodGet, "/api/bookings/slots?workerId=w1", "", nil, GetAvailableSlots)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(http.MethodGet, "/api/bookings/slots?workerId=w1&date=yesterday", "", nil, GetAvailableSlots)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableSlotsOK(t *testing.T) {
	SlotService = &stubSlotService{result: &models.SlotAvailability{
		DayOfWeek:      "Luni",
		AvailableSlots: []string{"09:00", "10:00"},
	}}

	w := performRequest(http.MethodGet, "/api/bookings/slots?workerId=w1&date=2026-03-02", "", nil, GetAvailableSlots)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dayOfWeek":"Luni"`)
	assert.Contains(t, w.Body.String(), `"09:00"`)
}

func TestCreateBookingStatusMapping(t *testing.T) {
	body := `{"salonId":"s","workerId":"w","service":"Tuns","date":"2026-03-02","timeSlot":"10:00","clientName":"Ion","clientEmail":"ion@example.com","clientPhone":"0712"}`

	cases := []struct {
		err  error
		code int
	}{
		{booking.NewValidationError("All fields are required except userId"), http.StatusBadRequest},
		{booking.NewNotFoundError("worker", "Worker not found"), http.StatusNotFound},
		{&booking.ConflictError{Message: "This time slot is already booked"}, http.StatusConflict},
		{&booking.ExpiredError{Message: "Voucher has expired"}, http.StatusBadRequest},
		{&booking.InsufficientFundsError{Required: 150, Available: 100}, http.StatusBadRequest},
		{&booking.InvalidStateError{Message: "Booking is already cancelled"}, http.StatusConflict},
	}

	for _, tc := range cases {
		BookingService = &stubBookingService{err: tc.err}
		w := performRequest(http.MethodPost, "/api/bookings", body, nil, CreateBooking)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestCreateBookingCreated(t *testing.T) {
	BookingService = &stubBookingService{createResult: &models.BookingResult{
		Booking: models.BookingSummary{ID: "b1", Status: models.BookingStatusConfirmed},
	}}
	body := `{"salonId":"s","workerId":"w","service":"Tuns","date":"2026-03-02","timeSlot":"10:00","clientName":"Ion","clientEmail":"ion@example.com","clientPhone":"0712"}`

	w := performRequest(http.MethodPost, "/api/bookings", body, nil, CreateBooking)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"b1"`)
}

func TestCancelBookingOK(t *testing.T) {
	BookingService = &stubBookingService{cancelResult: &models.CancelResult{
		Booking:         models.Booking{ID: "b1", Status: models.BookingStatusCancelled},
		VoucherRestored: true,
	}}

	w := performRequest(http.MethodDelete, "/api/bookings/b1", "", gin.Params{{Key: "id", Value: "b1"}}, CancelBooking)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"voucherRestored":true`)
}
