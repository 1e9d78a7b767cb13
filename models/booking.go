package models

import "time"

// Booking status values.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment methods.
const (
	PaymentMethodLocation = "location"
	PaymentMethodVoucher  = "voucher"
)

// Booking is the authoritative transaction record. At most one active
// (non-cancelled) booking may exist per (workerId, date, timeSlot); the
// bookings collection enforces this with a partial unique index keyed on the
// Active flag, which mirrors status != cancelled.
type Booking struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"userId,omitempty" json:"userId,omitempty"` // empty for guest bookings
	SalonID       string    `bson:"salonId" json:"salonId"`
	WorkerID      string    `bson:"workerId" json:"workerId"`
	Service       string    `bson:"service" json:"service"`
	Date          time.Time `bson:"date" json:"date"` // normalized to midnight
	TimeSlot      string    `bson:"timeSlot" json:"timeSlot"`
	Status        string    `bson:"status" json:"status"`
	Active        bool      `bson:"active" json:"-"`
	ClientName    string    `bson:"clientName" json:"clientName"`
	ClientEmail   string    `bson:"clientEmail" json:"clientEmail"`
	ClientPhone   string    `bson:"clientPhone" json:"clientPhone"`
	PaymentMethod string    `bson:"paymentMethod" json:"paymentMethod"`
	VoucherUsed   string    `bson:"voucherUsed,omitempty" json:"voucherUsed,omitempty"`
	TotalAmount   float64   `bson:"totalAmount" json:"totalAmount"`
	PaidAmount    float64   `bson:"paidAmount" json:"paidAmount"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingSummary is the booking projection returned to clients after create.
type BookingSummary struct {
	ID            string        `json:"id"`
	Date          time.Time     `json:"date"`
	TimeSlot      string        `json:"timeSlot"`
	Service       string        `json:"service"`
	Status        string        `json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	TotalAmount   float64       `json:"totalAmount"`
	PaidAmount    float64       `json:"paidAmount"`
	Worker        WorkerSummary `json:"worker"`
	Salon         SalonSummary  `json:"salon"`
}
