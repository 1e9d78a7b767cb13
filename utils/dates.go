package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayNames maps time.Weekday (0 = Sunday) to the localized day names used by
// worker availability and salon working hours. Every component that needs a
// day name for a calendar date goes through DayNameFor so the three data
// sources can never disagree on which name governs a date.
var DayNames = [7]string{"Duminică", "Luni", "Marți", "Miercuri", "Joi", "Vineri", "Sâmbătă"}

// DayNameFor returns the localized day name for the given date.
func DayNameFor(t time.Time) string {
	return DayNames[int(t.Weekday())]
}

// Midnight truncates a time to 00:00:00 in its own location. All date-only
// comparisons in the booking core use this single helper.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// ParseClock parses an "HH:MM" 24-hour string and returns the hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed clock string %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock string %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock string %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock string %q out of range", s)
	}
	return hour, minute, nil
}

// SlotLabel formats a whole-hour slot as its zero-padded "HH:00" label.
func SlotLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
