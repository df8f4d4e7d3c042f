package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProviderID int64   `json:"providerId"`
	ServiceID  int64   `json:"serviceId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"clientId"`
	ProviderID      int64     `json:"providerId"`
	ServiceID       int64     `json:"serviceId"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	SyncStatus      string    `json:"syncStatus"`
	ServiceName     string    `json:"serviceName"`
	ServicePrice    float64   `json:"servicePrice"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
// clientID берется из контекста аутентификации, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:   clientID,
		ProviderID: r.ProviderID,
		ServiceID:  r.ServiceID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ProviderID:      resp.ProviderID,
		ServiceID:       resp.ServiceID,
		StartsAt:        resp.StartsAt,
		EndsAt:          resp.EndsAt,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		SyncStatus:      resp.SyncStatus,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}
}
