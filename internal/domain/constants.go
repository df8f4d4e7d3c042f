package domain

// Default provider settings values
const (
	DefaultSlotStepMinutes    = 30
	DefaultBufferMinutes      = 0
	DefaultMinNoticeHours     = 0
	DefaultAdvanceBookingDays = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 240 // 4 hours
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinBufferMinutes            = 0
	MaxBufferMinutes            = 120 // 2 hours
	MinNoticeHours              = 0
	MaxNoticeHours              = 168 // 1 week
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы бронирований, которые занимают слот
// Используется при подсчете доступных слотов и проверке конфликтов
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы бронирований, которые слот не занимают
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledByProvider,
	StatusNoShow,
}
