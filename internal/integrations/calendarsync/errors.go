package calendarsync

import "errors"

var (
	// ErrSyncRejected возвращается, когда календарный сервис отклонил событие
	// (например, конфликт во внешнем календаре провайдера)
	ErrSyncRejected = errors.New("calendarsync client: event rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarsync client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarsync client: invalid response")

	// ErrServiceDegraded возвращается при недоступности календарного сервиса
	// Синхронизация best-effort: бронирование остается валидным, меняется
	// только его sync_status
	ErrServiceDegraded = errors.New("calendarsync unavailable: graceful degradation applied")
)
