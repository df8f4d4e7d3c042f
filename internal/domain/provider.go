package domain

import (
	"fmt"
	"time"
)

// ProviderSettings represents a provider's availability configuration:
// weekly working schedule, timezone and booking policy knobs.
type ProviderSettings struct {
	ProviderID         int64
	Timezone           string // IANA timezone name, e.g. "Europe/Moscow"
	Schedule           WeeklySchedule
	SlotStepMinutes    int // Шаг генерации слотов, не зависит от длительности услуги
	BufferMinutes      int // Пауза вокруг бронирования, применяется при создании
	MinNoticeHours     int // Минимальное время до начала слота
	AdvanceBookingDays int // 0 = unlimited
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Location resolves the provider's IANA timezone.
// All schedule and break times are provider-local wall clock; bookings are
// stored in UTC and converted through this location.
func (p *ProviderSettings) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, p.Timezone)
	}
	return loc, nil
}

// StepMinutes returns the configured slot generation step,
// falling back to the default when unset
func (p *ProviderSettings) StepMinutes() int {
	if p.SlotStepMinutes <= 0 {
		return DefaultSlotStepMinutes
	}
	return p.SlotStepMinutes
}

// HasAdvanceBookingLimit returns true if bookings are limited in how far
// in advance they can be made
func (p *ProviderSettings) HasAdvanceBookingLimit() bool {
	return p.AdvanceBookingDays > 0
}

// Service represents a bookable service from the provider's catalog
type Service struct {
	ID              int64
	ProviderID      int64
	Name            string
	DurationMinutes int
	Price           *float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
