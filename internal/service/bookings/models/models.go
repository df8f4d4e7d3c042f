package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingResponse модель бронирования для внешних слоев
type BookingResponse struct {
	ID                 int64      `json:"id"`
	ClientID           int64      `json:"clientId"`
	ProviderID         int64      `json:"providerId"`
	ServiceID          int64      `json:"serviceId"`
	StartsAt           time.Time  `json:"startsAt"`
	EndsAt             time.Time  `json:"endsAt"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	SyncStatus         string     `json:"syncStatus"`
	ServiceName        string     `json:"serviceName"`
	ServicePrice       float64    `json:"servicePrice"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetUserBookingsRequest запрос истории бронирований клиента
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // Опциональный фильтр по статусу
}

// GetProviderBookingsRequest запрос бронирований провайдера
type GetProviderBookingsRequest struct {
	ProviderID      int64
	UserID          int64 // Инициатор запроса (для проверки прав)
	From            *time.Time
	To              *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64
	CancellationReason string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetProviderBookingsRequest) ToDomainFilter() (domain.ProviderBookingsFilter, error) {
	filter := domain.ProviderBookingsFilter{
		ProviderID:      r.ProviderID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.ProviderBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.StatusCancelledByProvider,
		domain.StatusNoShow:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		ProviderID:         b.ProviderID,
		ServiceID:          b.ServiceID,
		StartsAt:           b.StartsAt,
		EndsAt:             b.EndsAt,
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		SyncStatus:         string(b.SyncStatus),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
