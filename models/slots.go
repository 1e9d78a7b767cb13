package models

import "time"

// SlotAvailability is the public answer to an available-slots query.
type SlotAvailability struct {
	Worker         WorkerSummary `json:"worker"`
	Date           time.Time     `json:"date"`
	DayOfWeek      string        `json:"dayOfWeek"`
	AvailableSlots []string      `json:"availableSlots"`
	Note           string        `json:"note,omitempty"`
	Warning        string        `json:"warning,omitempty"`
}

// AppliedVoucher reports the voucher consumed by a booking. Remaining is
// informational only: any surplus is forfeited, not stored as balance.
type AppliedVoucher struct {
	Code      string  `json:"code"`
	Amount    int64   `json:"amount"`
	Remaining float64 `json:"remaining"`
}

// BookingResult is the response payload of a successful booking creation.
type BookingResult struct {
	Booking     BookingSummary  `json:"booking"`
	Warning     string          `json:"warning,omitempty"`
	VoucherUsed *AppliedVoucher `json:"voucherUsed,omitempty"`
}

// CancelResult is the response payload of a booking cancellation.
type CancelResult struct {
	Booking         Booking `json:"booking"`
	VoucherRestored bool    `json:"voucherRestored"`
}

// BookingDetail is a booking joined with its worker/salon summaries for
// listing endpoints.
type BookingDetail struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	TimeSlot      string          `json:"timeSlot"`
	Service       string          `json:"service"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	TotalAmount   float64         `json:"totalAmount"`
	PaidAmount    float64         `json:"paidAmount"`
	VoucherUsed   *AppliedVoucher `json:"voucherUsed,omitempty"`
	ClientName    string          `json:"clientName,omitempty"`
	ClientEmail   string          `json:"clientEmail,omitempty"`
	ClientPhone   string          `json:"clientPhone,omitempty"`
	Worker        *WorkerSummary  `json:"worker,omitempty"`
	Salon         *SalonSummary   `json:"salon,omitempty"`
}

// BookingRequest is the input payload for creating a booking. UserID is
// optional; guest bookings are allowed.
type BookingRequest struct {
	UserID        string  `json:"userId"`
	SalonID       string  `json:"salonId"`
	WorkerID      string  `json:"workerId"`
	Service       string  `json:"service"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"timeSlot"`
	ClientName    string  `json:"clientName"`
	ClientEmail   string  `json:"clientEmail"`
	ClientPhone   string  `json:"clientPhone"`
	PaymentMethod string  `json:"paymentMethod"`
	VoucherID     string  `json:"voucherId"`
	VoucherCode   string  `json:"voucherCode"`
	TotalAmount   float64 `json:"totalAmount"`
}
