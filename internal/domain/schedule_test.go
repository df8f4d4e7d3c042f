package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func enabledDay(start, end string, breaks ...BreakInterval) DaySchedule {
	return DaySchedule{
		Enabled:   true,
		WorkStart: types.TimeString(start),
		WorkEnd:   types.TimeString(end),
		Breaks:    breaks,
	}
}

func TestDaySchedule_Validate(t *testing.T) {
	assert.NoError(t, enabledDay("09:00", "17:00").Validate())

	// Выключенный день валиден даже без времени
	assert.NoError(t, DaySchedule{Enabled: false}.Validate())

	assert.ErrorIs(t, enabledDay("17:00", "09:00").Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, enabledDay("09:00", "09:00").Validate(), ErrInvalidSchedule)
	assert.ErrorIs(t, enabledDay("", "17:00").Validate(), ErrInvalidSchedule)
}

func TestDaySchedule_ValidateBreaks(t *testing.T) {
	inside := enabledDay("09:00", "17:00",
		BreakInterval{Start: types.TimeString("12:00"), End: types.TimeString("13:00")})
	assert.NoError(t, inside.Validate())

	// Перерыв может совпадать с границами рабочего дня
	edge := enabledDay("09:00", "17:00",
		BreakInterval{Start: types.TimeString("09:00"), End: types.TimeString("10:00")})
	assert.NoError(t, edge.Validate())

	outside := enabledDay("09:00", "17:00",
		BreakInterval{Start: types.TimeString("08:00"), End: types.TimeString("10:00")})
	assert.ErrorIs(t, outside.Validate(), ErrInvalidSchedule)

	inverted := enabledDay("09:00", "17:00",
		BreakInterval{Start: types.TimeString("13:00"), End: types.TimeString("12:00")})
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidSchedule)

	// Пересекающиеся перерывы допустимы - генератор проверяет каждый
	overlapping := enabledDay("09:00", "17:00",
		BreakInterval{Start: types.TimeString("12:00"), End: types.TimeString("13:00")},
		BreakInterval{Start: types.TimeString("12:30"), End: types.TimeString("14:00")})
	assert.NoError(t, overlapping.Validate())
}

func TestWeeklySchedule_ForWeekday(t *testing.T) {
	schedule := WeeklySchedule{
		Monday: enabledDay("09:00", "17:00"),
		Sunday: DaySchedule{Enabled: false},
	}

	assert.True(t, schedule.ForWeekday(time.Monday).Enabled)
	assert.False(t, schedule.ForWeekday(time.Sunday).Enabled)
	assert.False(t, schedule.ForWeekday(time.Wednesday).Enabled)
}

func TestWeeklySchedule_ScanRoundTrip(t *testing.T) {
	original := WeeklySchedule{
		Monday: enabledDay("09:00", "17:00",
			BreakInterval{Start: types.TimeString("12:00"), End: types.TimeString("13:00")}),
		Friday: enabledDay("10:00", "16:00"),
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned WeeklySchedule
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestWeeklySchedule_ScanRejectsInvalidDocument(t *testing.T) {
	var s WeeklySchedule

	assert.ErrorIs(t, s.Scan([]byte("not json")), ErrInvalidSchedule)

	// Документ с нарушенным инвариантом не проходит границу хранилища
	broken := []byte(`{"monday":{"enabled":true,"workStart":"17:00","workEnd":"09:00","breaks":[]}}`)
	assert.ErrorIs(t, s.Scan(broken), ErrInvalidSchedule)

	assert.Error(t, s.Scan(42))
}

func TestBooking_Overlaps(t *testing.T) {
	booking := &Booking{
		StartsAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:   StatusConfirmed,
	}

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
	}

	assert.True(t, booking.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, booking.Overlaps(at(9, 30), at(10, 30)))
	assert.True(t, booking.Overlaps(at(10, 15), at(10, 45)))

	// Касание границ пересечением не считается
	assert.False(t, booking.Overlaps(at(9, 0), at(10, 0)))
	assert.False(t, booking.Overlaps(at(11, 0), at(12, 0)))
}

func TestBooking_Statuses(t *testing.T) {
	blocking := []BookingStatus{StatusPending, StatusConfirmed}
	for _, status := range blocking {
		b := &Booking{Status: status}
		assert.True(t, b.IsBlocking(), "status %s", status)
		assert.True(t, b.CanBeCancelled(), "status %s", status)
	}

	inactive := []BookingStatus{StatusCompleted, StatusCancelledByClient, StatusCancelledByProvider, StatusNoShow}
	for _, status := range inactive {
		b := &Booking{Status: status}
		assert.False(t, b.IsBlocking(), "status %s", status)
		assert.False(t, b.CanBeCancelled(), "status %s", status)
	}

	assert.True(t, (&Booking{Status: StatusCancelledByClient}).IsCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsCancelled())
}
