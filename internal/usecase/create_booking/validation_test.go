package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func bookingAt(startHour, startMin, endHour, endMin int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartsAt: time.Date(2025, 6, 2, startHour, startMin, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 6, 2, endHour, endMin, 0, 0, time.UTC),
		Status:   status,
	}
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{
		ClientID:   1,
		ProviderID: 2,
		ServiceID:  3,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
	}
	require.NoError(t, validateRequest(valid))

	badClient := *valid
	badClient.ClientID = 0
	assert.ErrorIs(t, validateRequest(&badClient), ErrInvalidInput)

	badTime := *valid
	badTime.StartTime = types.TimeString("25:00")
	assert.ErrorIs(t, validateRequest(&badTime), ErrInvalidInput)

	noDate := *valid
	noDate.Date = time.Time{}
	assert.ErrorIs(t, validateRequest(&noDate), ErrInvalidInput)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	// Сегодня - валидная дата, даже если время now уже позднее
	today := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, validateDate(today, now, time.UTC, 0))

	yesterday := today.AddDate(0, 0, -1)
	assert.ErrorIs(t, validateDate(yesterday, now, time.UTC, 0), ErrInvalidDate)
}

func TestValidateDate_AdvanceLimit(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	inSevenDays := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, validateDate(inSevenDays, now, time.UTC, 7))

	inEightDays := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, validateDate(inEightDays, now, time.UTC, 7), ErrDateTooFarInFuture)

	// advanceBookingDays = 0 снимает ограничение
	farFuture := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, validateDate(farFuture, now, time.UTC, 0))
}

func TestValidateNotice(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, validateNotice(now.Add(3*time.Hour), now, 2))
	assert.ErrorIs(t, validateNotice(now.Add(time.Hour), now, 2), ErrTooLateToBook)

	// Ровно на границе уведомления - тоже поздно
	assert.ErrorIs(t, validateNotice(now.Add(2*time.Hour), now, 2), ErrTooLateToBook)

	// Без minNoticeHours запрещено только прошлое
	assert.NoError(t, validateNotice(now.Add(time.Minute), now, 0))
	assert.ErrorIs(t, validateNotice(now, now, 0), ErrTooLateToBook)
}

func TestValidateWithinWorkingHours(t *testing.T) {
	day := domain.DaySchedule{
		Enabled:   true,
		WorkStart: types.TimeString("09:00"),
		WorkEnd:   types.TimeString("17:00"),
		Breaks: []domain.BreakInterval{
			{Start: types.TimeString("12:00"), End: types.TimeString("13:00")},
		},
	}
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
	}

	assert.NoError(t, validateWithinWorkingHours(day, date, time.UTC, at(10, 0), at(11, 0)))

	// Заканчивается ровно в закрытие - помещается
	assert.NoError(t, validateWithinWorkingHours(day, date, time.UTC, at(16, 0), at(17, 0)))

	// Начинается до открытия
	assert.ErrorIs(t, validateWithinWorkingHours(day, date, time.UTC, at(8, 30), at(9, 30)), ErrOutsideWorkingHours)

	// Вылезает за закрытие
	assert.ErrorIs(t, validateWithinWorkingHours(day, date, time.UTC, at(16, 30), at(17, 30)), ErrOutsideWorkingHours)

	// Пересекает перерыв
	assert.ErrorIs(t, validateWithinWorkingHours(day, date, time.UTC, at(11, 30), at(12, 30)), ErrOutsideWorkingHours)

	// Граничит с перерывом с обеих сторон - допустимо
	assert.NoError(t, validateWithinWorkingHours(day, date, time.UTC, at(11, 0), at(12, 0)))
	assert.NoError(t, validateWithinWorkingHours(day, date, time.UTC, at(13, 0), at(14, 0)))
}

func TestFindConflict(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 2, hour, minute, 0, 0, time.UTC)
	}

	bookings := []*domain.Booking{
		bookingAt(10, 0, 11, 0, domain.StatusConfirmed),
		bookingAt(14, 0, 15, 0, domain.StatusCancelledByClient),
	}

	// Прямое пересечение
	assert.NotNil(t, findConflict(at(10, 30), at(11, 30), 0, bookings))

	// Граничащий интервал без буфера конфликтом не является
	assert.Nil(t, findConflict(at(11, 0), at(12, 0), 0, bookings))

	// С буфером 15 минут граничащий интервал уже конфликтует
	assert.NotNil(t, findConflict(at(11, 0), at(12, 0), 15, bookings))

	// Отмененное бронирование не конфликтует
	assert.Nil(t, findConflict(at(14, 0), at(15, 0), 0, bookings))

	assert.Nil(t, findConflict(at(12, 0), at(13, 0), 0, bookings))
}
