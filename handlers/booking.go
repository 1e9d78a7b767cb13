package handlers

import (
	"net/http"
	"time"

	"salonix/models"
	"salonix/services/booking"
	"salonix/utils"

	"github.com/gin-gonic/gin"
)

var SlotService booking.SlotService
var BookingService booking.BookingService

// GetAvailableSlots returns the open hourly slots for a worker on a date.
// Query params: workerId, date (YYYY-MM-DD), service (optional).
func GetAvailableSlots(c *gin.Context) {
	workerID := c.Query("workerId")
	dateParam := c.Query("date")
	if workerID == "" || dateParam == "" {
		utils.JSONError(c, http.StatusBadRequest, "workerId and date are required", "")
		return
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, dateParam); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date format", "expected YYYY-MM-DD")
			return
		}
	}

	availability, err := SlotService.AvailableSlots(c.Request.Context(), workerID, date, c.Query("service"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

// CreateBooking books a slot. Authenticated requests attach the caller as the
// booking owner; anonymous guest bookings are allowed.
func CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if userID, exists := c.Get("userID"); exists && req.UserID == "" {
		req.UserID, _ = userID.(string)
	}

	result, err := BookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelBooking cancels a booking and restores its voucher value.
func CancelBooking(c *gin.Context) {
	result, err := BookingService.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetMyBookings lists the authenticated user's bookings.
func GetMyBookings(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := BookingService.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetSalonBookings lists all bookings placed at a salon.
func GetSalonBookings(c *gin.Context) {
	bookings, err := BookingService.ListSalonBookings(c.Request.Context(), c.Param("salonId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetWorkerBookings lists all bookings assigned to a worker.
func GetWorkerBookings(c *gin.Context) {
	bookings, err := BookingService.ListWorkerBookings(c.Request.Context(), c.Param("workerId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
