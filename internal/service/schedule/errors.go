package schedule

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки провайдера не найдены
	ErrSettingsNotFound = errors.New("provider settings not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidSchedule возвращается при некорректном расписании в запросе
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
