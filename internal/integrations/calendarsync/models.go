package calendarsync

import "time"

// PushEventRequest запрос на создание события во внешнем календаре провайдера
type PushEventRequest struct {
	BookingID   int64     `json:"bookingId"`
	ProviderID  int64     `json:"providerId"`
	ServiceName string    `json:"serviceName"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
}

// PushEventResponse ответ календарного сервиса
type PushEventResponse struct {
	EventID string `json:"eventId"`
}

// ErrorResponse модель ошибки от календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
