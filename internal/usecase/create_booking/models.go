package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID   int64            // ID клиента (из заголовка аутентификации)
	ProviderID int64            // ID провайдера
	ServiceID  int64            // ID услуги
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала в таймзоне провайдера
	Notes      *string          // Комментарий клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	ClientID        int64
	ProviderID      int64
	ServiceID       int64
	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int
	Status          string
	SyncStatus      string
	ServiceName     string
	ServicePrice    float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
