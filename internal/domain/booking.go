package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByClient   BookingStatus = "cancelled_by_client"
	StatusCancelledByProvider BookingStatus = "cancelled_by_provider"
	StatusNoShow              BookingStatus = "no_show"
)

// SyncStatus represents the calendar synchronization state of a booking.
// Calendar sync is best-effort and never gates availability.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

// Booking represents an appointment booking in the system.
// StartsAt/EndsAt are absolute instants stored in UTC; wall-clock
// representation belongs to the provider's timezone.
type Booking struct {
	ID              int64
	ClientID        int64
	ProviderID      int64
	ServiceID       int64
	StartsAt        time.Time
	EndsAt          time.Time
	DurationMinutes int
	Status          BookingStatus
	SyncStatus      SyncStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies its time interval.
// Only pending and confirmed bookings block availability.
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledByProvider
}

// Overlaps reports whether the booking interval [StartsAt, EndsAt)
// overlaps [start, end). Boundary touch is not an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartsAt.Before(end) && b.EndsAt.After(start)
}

// ProviderBookingsFilter фильтр для получения бронирований провайдера
type ProviderBookingsFilter struct {
	ProviderID      int64          // Обязательный параметр
	From            *time.Time     // Начало периода (UTC, опционально)
	To              *time.Time     // Конец периода (UTC, опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные/завершенные бронирования
}
