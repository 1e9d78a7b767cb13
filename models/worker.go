package models

import "time"

// DayHours is an opening interval for one weekday. DayOfWeek is the localized
// day name ("Luni", "Marți", ...); From and To are "HH:MM" 24-hour strings.
type DayHours struct {
	DayOfWeek string `bson:"dayOfWeek" json:"dayOfWeek"`
	From      string `bson:"from" json:"from"`
	To        string `bson:"to" json:"to"`
}

// WorkerBooking is a denormalized cache entry mirroring a row in the bookings
// collection. It is not the source of truth: occupancy checks union it with
// the authoritative collection because the two can diverge under concurrent
// writes.
type WorkerBooking struct {
	Date      time.Time `bson:"date" json:"date"`
	TimeSlot  string    `bson:"timeSlot" json:"timeSlot"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Worker represents a bookable salon employee.
type Worker struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Surname      string          `bson:"surname" json:"surname"`
	PhoneNumber  string          `bson:"phoneNumber" json:"phoneNumber"`
	Email        string          `bson:"email" json:"email"`
	SalonID      string          `bson:"salonId" json:"salonId"`
	Services     []ServiceEntry  `bson:"services" json:"services"`
	Availability []DayHours      `bson:"availability" json:"availability"`
	Bookings     []WorkerBooking `bson:"bookings" json:"bookings"`
	Image        string          `bson:"image,omitempty" json:"image,omitempty"`
	Experience   int             `bson:"experience,omitempty" json:"experience,omitempty"`
	Bio          string          `bson:"bio,omitempty" json:"bio,omitempty"`
}

// WorkerSummary is the short worker projection embedded in booking responses.
type WorkerSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

func (w *Worker) Summary() WorkerSummary {
	return WorkerSummary{ID: w.ID, Name: w.Name, Surname: w.Surname}
}

// HoursFor returns the worker-specific opening hours for the given day name.
func (w *Worker) HoursFor(dayName string) (DayHours, bool) {
	for _, a := range w.Availability {
		if a.DayOfWeek == dayName {
			return a, true
		}
	}
	return DayHours{}, false
}
