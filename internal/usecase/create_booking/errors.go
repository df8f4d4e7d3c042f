package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена,
	// неактивна или принадлежит другому провайдеру
	ErrServiceNotFound = errors.New("service not found")

	// ErrProviderNotConfigured возвращается, когда у провайдера нет
	// настроенного расписания - бронировать нечего
	ErrProviderNotConfigured = errors.New("provider has no availability settings")

	// ErrProviderClosed возвращается, когда провайдер не работает в указанную дату
	ErrProviderClosed = errors.New("provider is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда запрошенный интервал
	// не помещается в рабочие часы или попадает на перерыв
	ErrOutsideWorkingHours = errors.New("requested time is outside working hours")

	// ErrSlotNotAvailable возвращается, когда слот занят другим бронированием
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTooLateToBook возвращается при нарушении минимального времени до брони
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
