package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date       string          `json:"date"`
	ProviderID int64           `json:"providerId"`
	ServiceID  int64           `json:"serviceId"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
// Start/End - абсолютные моменты, StartTime/EndTime - время на стене
// в таймзоне провайдера
type AvailableSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start:     slot.Start,
			End:       slot.End,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: true,
		}
	}

	return &AvailableSlotsResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		ProviderID: resp.ProviderID,
		ServiceID:  resp.ServiceID,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(providerID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
	}, nil
}
