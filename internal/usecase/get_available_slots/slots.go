package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// interval полуинтервал [start, end) в абсолютном времени
type interval struct {
	start time.Time
	end   time.Time
}

// overlaps проверяет РЕАЛЬНОЕ пересечение полуинтервалов [start, end)
// Используются строгие неравенства: интервалы, которые только граничат
// (конец одного == начало другого), пересечением НЕ считаются
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, перерыв 12:00-13:00 → НЕТ пересечения (граничат)
func (i interval) overlaps(start, end time.Time) bool {
	return i.start.Before(end) && i.end.After(start)
}

// GenerateSlots генерирует список доступных слотов на день
//
// Чистая детерминированная функция без побочных эффектов: два вызова с
// одинаковыми входными данными дают одинаковый результат. Все времена
// расписания (рабочие часы, перерывы) трактуются как время на стене в
// таймзоне loc провайдера и привязываются к дате date; now сравнивается
// как абсолютный момент.
//
// Кандидаты перебираются от начала рабочего дня с фиксированным шагом
// stepMinutes (шаг - настройка генерации, он НЕ зависит от длительности
// услуги). Кандидат отбрасывается, если:
//   - услуга не помещается целиком в рабочие часы (конец слота позже закрытия);
//   - слот пересекается с активным бронированием (строгий полуинтервал);
//   - слот пересекается с любым перерывом - перерывы в хранилище не обязаны
//     быть отсортированы или непересекающимися, проверка идет по всем;
//   - слот начинается не позже now (прошедшие слоты не предлагаются).
//
// Выключенный день, полностью занятый день или услуга длиннее рабочего
// окна - это нормальная пустая выдача, не ошибка.
func GenerateSlots(
	day domain.DaySchedule,
	date time.Time,
	loc *time.Location,
	durationMinutes int,
	stepMinutes int,
	bookings []*domain.Booking,
	now time.Time,
) ([]domain.CandidateSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: stepMinutes must be positive", ErrInvalidInput)
	}

	// День выключен в расписании - слотов нет
	if !day.Enabled {
		return []domain.CandidateSlot{}, nil
	}

	if err := day.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Привязываем рабочие часы к дате в таймзоне провайдера
	workStart, err := day.WorkStart.OnDate(date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	workEnd, err := day.WorkEnd.OnDate(date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	breaks, err := resolveBreaks(day.Breaks, date, loc)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	slots := make([]domain.CandidateSlot, 0)

	for start := workStart; start.Before(workEnd); start = start.Add(step) {
		end := start.Add(duration)

		// Услуга должна помещаться целиком в рабочие часы
		// Конец слота ровно во время закрытия допустим (полуинтервал)
		if end.After(workEnd) {
			// Конец кандидата растет монотонно - дальше поместиться нечему
			break
		}

		// Прошедшие слоты и слот, начинающийся прямо сейчас, не предлагаем
		if !start.After(now) {
			continue
		}

		if overlapsAnyBooking(start, end, bookings) {
			continue
		}

		if overlapsAnyBreak(start, end, breaks) {
			continue
		}

		slots = append(slots, domain.CandidateSlot{Start: start, End: end})
	}

	// Порядок перебора уже дает возрастание по началу слота - сортировка не нужна
	return slots, nil
}

// resolveBreaks привязывает перерывы дня к дате в таймзоне провайдера
func resolveBreaks(breaks []domain.BreakInterval, date time.Time, loc *time.Location) ([]interval, error) {
	resolved := make([]interval, 0, len(breaks))

	for i, br := range breaks {
		start, err := br.Start.OnDate(date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: break #%d: %v", ErrInvalidInput, i, err)
		}
		end, err := br.End.OnDate(date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: break #%d: %v", ErrInvalidInput, i, err)
		}
		resolved = append(resolved, interval{start: start, end: end})
	}

	return resolved, nil
}

// overlapsAnyBooking проверяет пересечение слота с активными бронированиями
// Отмененные и завершенные бронирования слот не блокируют
func overlapsAnyBooking(start, end time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}
		if booking.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// overlapsAnyBreak проверяет пересечение слота с перерывами
// Перерывы проверяются все до одного: порядок и взаимные пересечения
// перерывов в хранилище значения не имеют
func overlapsAnyBreak(start, end time.Time, breaks []interval) bool {
	for _, br := range breaks {
		if br.overlaps(start, end) {
			return true
		}
	}
	return false
}
