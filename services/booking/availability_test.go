package booking

import (
	"testing"
	"time"

	"salonix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-02 is a Monday ("Luni").
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestResolveDayWindowWorkerWins(t *testing.T) {
	worker := &models.Worker{
		Availability: []models.DayHours{{DayOfWeek: "Luni", From: "10:00", To: "14:00"}},
	}
	salon := &models.Salon{
		WorkingHours: []models.DayHours{{DayOfWeek: "Luni", From: "08:00", To: "20:00"}},
	}

	window := ResolveDayWindow(worker, salon, monday)
	assert.Equal(t, AuthorityWorker, window.Authority)
	assert.Equal(t, "10:00", window.From)
	assert.Equal(t, "14:00", window.To)
	assert.Equal(t, "Luni", window.DayOfWeek)
	assert.Empty(t, window.Note)
}

func TestResolveDayWindowSalonFallback(t *testing.T) {
	worker := &models.Worker{
		Availability: []models.DayHours{{DayOfWeek: "Vineri", From: "10:00", To: "14:00"}},
	}
	salon := &models.Salon{
		WorkingHours: []models.DayHours{{DayOfWeek: "Luni", From: "08:00", To: "20:00"}},
	}

	window := ResolveDayWindow(worker, salon, monday)
	assert.Equal(t, AuthoritySalon, window.Authority)
	assert.Equal(t, "08:00", window.From)
	assert.Equal(t, "20:00", window.To)
	assert.Equal(t, NoteSalonFallback, window.Note)
}

func TestResolveDayWindowDefaultFallback(t *testing.T) {
	worker := &models.Worker{}

	for _, salon := range []*models.Salon{nil, {}} {
		window := ResolveDayWindow(worker, salon, monday)
		assert.Equal(t, AuthorityDefault, window.Authority)
		assert.Equal(t, "09:00", window.From)
		assert.Equal(t, "17:00", window.To)
		assert.Equal(t, NoteDefaultFallback, window.Note)
	}
}

func TestDayWindowSlotsHourly(t *testing.T) {
	window := DayWindow{From: "09:00", To: "17:00"}
	slots, err := window.Slots()
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, slots)
}

func TestDayWindowSlotsSingleHour(t *testing.T) {
	window := DayWindow{From: "12:00", To: "13:00"}
	slots, err := window.Slots()
	require.NoError(t, err)
	assert.Equal(t, []string{"12:00"}, slots)
}

func TestDayWindowSlotsEmptyWhenInverted(t *testing.T) {
	for _, window := range []DayWindow{
		{From: "17:00", To: "09:00"},
		{From: "12:00", To: "12:00"},
	} {
		slots, err := window.Slots()
		require.NoError(t, err)
		assert.Empty(t, slots)
	}
}

func TestDayWindowSlotsMalformedClock(t *testing.T) {
	window := DayWindow{From: "nine", To: "17:00"}
	_, err := window.Slots()

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestServiceWarning(t *testing.T) {
	services := []models.ServiceEntry{{Name: "Tuns"}, {Name: "Vopsit"}}

	assert.Empty(t, serviceWarning(services, "Tuns"))
	assert.Empty(t, serviceWarning(services, "  tuns "))
	assert.Empty(t, serviceWarning(services, "Consultație"))
	assert.Empty(t, serviceWarning(services, "consultatie"))
	assert.Empty(t, serviceWarning(services, "Any Service"))
	assert.Empty(t, serviceWarning(services, ""))

	assert.Equal(t, "Worker may not officially provide the Manichiură service",
		serviceWarning(services, "Manichiură"))
}
