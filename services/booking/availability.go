package booking

import (
	"time"

	"salonix/models"
	"salonix/utils"
)

// Availability authorities, in precedence order.
const (
	AuthorityWorker  = "worker"
	AuthoritySalon   = "salon"
	AuthorityDefault = "default"
)

// Fallback notes attached to slot responses when the worker has no
// availability entry for the queried day.
const (
	NoteSalonFallback   = "Using salon hours (worker has no specific availability)"
	NoteDefaultFallback = "Using default hours (9 AM - 5 PM)"
)

// Hard-coded fallback window when neither worker nor salon define hours.
const (
	defaultOpenHour  = 9
	defaultCloseHour = 17
)

// DayWindow is the resolved opening window governing a worker's slots on one
// calendar date, together with the authority that supplied it.
type DayWindow struct {
	DayOfWeek string
	From      string
	To        string
	Authority string
	Note      string
}

// ResolveDayWindow determines which opening hours govern the worker on the
// given date: the worker's own availability entry for that day name, else the
// salon's working hours, else the hard default. It is independent of booking
// state.
func ResolveDayWindow(worker *models.Worker, salon *models.Salon, date time.Time) DayWindow {
	dayName := utils.DayNameFor(date)

	if hours, ok := worker.HoursFor(dayName); ok {
		return DayWindow{
			DayOfWeek: dayName,
			From:      hours.From,
			To:        hours.To,
			Authority: AuthorityWorker,
		}
	}

	if salon != nil {
		if hours, ok := salon.HoursFor(dayName); ok {
			return DayWindow{
				DayOfWeek: dayName,
				From:      hours.From,
				To:        hours.To,
				Authority: AuthoritySalon,
				Note:      NoteSalonFallback,
			}
		}
	}

	return DayWindow{
		DayOfWeek: dayName,
		From:      utils.SlotLabel(defaultOpenHour),
		To:        utils.SlotLabel(defaultCloseHour),
		Authority: AuthorityDefault,
		Note:      NoteDefaultFallback,
	}
}

// Slots expands the window into one "HH:00" label per whole hour in
// [from, to). Granularity is fixed at 60 minutes. A window with from >= to
// yields an empty list, not an error; malformed clock strings fail with a
// ParseError.
func (w DayWindow) Slots() ([]string, error) {
	fromHour, _, err := utils.ParseClock(w.From)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}
	toHour, _, err := utils.ParseClock(w.To)
	if err != nil {
		return nil, &ParseError{Message: err.Error()}
	}

	var slots []string
	for hour := fromHour; hour < toHour; hour++ {
		slots = append(slots, utils.SlotLabel(hour))
	}
	return slots, nil
}
