package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID int64     // ID провайдера
	ServiceID  int64     // ID услуги (определяет длительность слота)
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProviderID int64     // ID провайдера
	ServiceID  int64     // ID услуги
	Date       time.Time // Дата, на которую запрашивались слоты
	Slots      []Slot    // Список доступных слотов по возрастанию начала
}

// Slot модель временного слота
// Start/End - абсолютные моменты времени, StartTime/EndTime - время
// на стене в таймзоне провайдера
type Slot struct {
	Start     time.Time
	End       time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}
