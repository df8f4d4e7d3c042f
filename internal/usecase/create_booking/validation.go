package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, loc *time.Location, advanceBookingDays int) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, loc)
	nowOnly := localDateOnly(now, loc)

	// Дата в прошлом (по локальному дню провайдера)
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := nowOnly.AddDate(0, 0, advanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateNotice проверяет, что бронирование не нарушает minNoticeHours
// Отсечка "не в прошлом" входит сюда же: при minNoticeHours = 0 требуется
// просто startsAt позже now
func validateNotice(startsAt, now time.Time, minNoticeHours int) error {
	cutoff := now.Add(time.Duration(minNoticeHours) * time.Hour)
	if !startsAt.After(cutoff) {
		if minNoticeHours > 0 {
			return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minNoticeHours)
		}
		return fmt.Errorf("%w: slot is in the past", ErrTooLateToBook)
	}
	return nil
}

// validateWithinWorkingHours проверяет, что интервал [startsAt, endsAt)
// целиком помещается в рабочие часы и не задевает перерывы
func validateWithinWorkingHours(day domain.DaySchedule, date time.Time, loc *time.Location, startsAt, endsAt time.Time) error {
	workStart, err := day.WorkStart.OnDate(date, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	workEnd, err := day.WorkEnd.OnDate(date, loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if startsAt.Before(workStart) || endsAt.After(workEnd) {
		return ErrOutsideWorkingHours
	}

	for _, br := range day.Breaks {
		breakStart, err := br.Start.OnDate(date, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		breakEnd, err := br.End.OnDate(date, loc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// Строгий полуинтервал: граница перерыва конфликтом не считается
		if startsAt.Before(breakEnd) && endsAt.After(breakStart) {
			return ErrOutsideWorkingHours
		}
	}

	return nil
}

// findConflict ищет активное бронирование, конфликтующее с интервалом
// [startsAt, endsAt), расширенным буфером с обеих сторон
// Буфер - политика создания брони, генератор слотов его не применяет
func findConflict(startsAt, endsAt time.Time, bufferMinutes int, bookings []*domain.Booking) *domain.Booking {
	buffer := time.Duration(bufferMinutes) * time.Minute
	paddedStart := startsAt.Add(-buffer)
	paddedEnd := endsAt.Add(buffer)

	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}
		if booking.Overlaps(paddedStart, paddedEnd) {
			return booking
		}
	}

	return nil
}

// localDateOnly обнуляет время, оставляя локальную дату в таймзоне loc
func localDateOnly(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
