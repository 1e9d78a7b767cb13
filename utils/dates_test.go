package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNameFor(t *testing.T) {
	// 2026-03-01 is a Sunday; the table is indexed by time.Weekday.
	sunday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	want := []string{"Duminică", "Luni", "Marți", "Miercuri", "Joi", "Vineri", "Sâmbătă"}

	for i, name := range want {
		assert.Equal(t, name, DayNameFor(sunday.AddDate(0, 0, i)))
	}
}

func TestMidnight(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Bucharest")
	require.NoError(t, err)
	ts := time.Date(2026, time.March, 2, 15, 42, 7, 123, loc)

	got := Midnight(ts)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 2, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}

func TestParseClock(t *testing.T) {
	hour, minute, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 30, minute)

	for _, bad := range []string{"", "nine", "9", "25:00", "12:60", "-1:00"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "09:00", SlotLabel(9))
	assert.Equal(t, "17:00", SlotLabel(17))
}
