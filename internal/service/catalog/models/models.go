package models

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// ServiceResponse услуга из каталога провайдера
type ServiceResponse struct {
	ID              int64    `json:"id"`
	ProviderID      int64    `json:"providerId"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"durationMinutes"`
	Price           *float64 `json:"price,omitempty"`
}

// ServiceListResponse список услуг провайдера
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainServices конвертирует список domain.Service в ServiceListResponse
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, len(services))
	for i, svc := range services {
		result[i] = ServiceResponse{
			ID:              svc.ID,
			ProviderID:      svc.ProviderID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}
	return &ServiceListResponse{
		Services: result,
		Total:    len(result),
	}
}
