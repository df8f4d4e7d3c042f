package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BreakDTO перерыв внутри рабочего дня
type BreakDTO struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// DayDTO расписание на один день недели
// Для выключенного дня время может отсутствовать
type DayDTO struct {
	Enabled   bool       `json:"enabled"`
	WorkStart string     `json:"workStart" validate:"omitempty,datetime=15:04"`
	WorkEnd   string     `json:"workEnd" validate:"omitempty,datetime=15:04"`
	Breaks    []BreakDTO `json:"breaks" validate:"omitempty,dive"`
}

// WeekDTO недельное расписание - все семь дней обязательны
type WeekDTO struct {
	Monday    DayDTO `json:"monday"`
	Tuesday   DayDTO `json:"tuesday"`
	Wednesday DayDTO `json:"wednesday"`
	Thursday  DayDTO `json:"thursday"`
	Friday    DayDTO `json:"friday"`
	Saturday  DayDTO `json:"saturday"`
	Sunday    DayDTO `json:"sunday"`
}

// UpdateScheduleRequest запрос на создание/обновление настроек провайдера
// Schema-валидация выполняется на границе: в генератор слотов попадают
// только типизированные, проверенные структуры
type UpdateScheduleRequest struct {
	ProviderID         int64    `json:"-"`
	UserID             int64    `json:"-"`
	Timezone           string   `json:"timezone" validate:"required,timezone"`
	Schedule           WeekDTO  `json:"schedule" validate:"required"`
	SlotStepMinutes    int      `json:"slotStepMinutes" validate:"omitempty,min=5,max=240"`
	BufferMinutes      int      `json:"bufferMinutes" validate:"min=0,max=120"`
	MinNoticeHours     int      `json:"minNoticeHours" validate:"min=0,max=168"`
	AdvanceBookingDays int      `json:"advanceBookingDays" validate:"min=0,max=365"`
}

// ScheduleResponse настройки провайдера для внешних слоев
type ScheduleResponse struct {
	ProviderID         int64     `json:"providerId"`
	Timezone           string    `json:"timezone"`
	Schedule           WeekDTO   `json:"schedule"`
	SlotStepMinutes    int       `json:"slotStepMinutes"`
	BufferMinutes      int       `json:"bufferMinutes"`
	MinNoticeHours     int       `json:"minNoticeHours"`
	AdvanceBookingDays int       `json:"advanceBookingDays"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ToDomainSettings конвертирует запрос в domain.ProviderSettings
func (r *UpdateScheduleRequest) ToDomainSettings() *domain.ProviderSettings {
	step := r.SlotStepMinutes
	if step == 0 {
		step = domain.DefaultSlotStepMinutes
	}

	return &domain.ProviderSettings{
		ProviderID:         r.ProviderID,
		Timezone:           r.Timezone,
		Schedule:           toDomainWeek(r.Schedule),
		SlotStepMinutes:    step,
		BufferMinutes:      r.BufferMinutes,
		MinNoticeHours:     r.MinNoticeHours,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}
}

// FromDomainSettings конвертирует domain.ProviderSettings в ScheduleResponse
func FromDomainSettings(s *domain.ProviderSettings) *ScheduleResponse {
	return &ScheduleResponse{
		ProviderID:         s.ProviderID,
		Timezone:           s.Timezone,
		Schedule:           fromDomainWeek(s.Schedule),
		SlotStepMinutes:    s.SlotStepMinutes,
		BufferMinutes:      s.BufferMinutes,
		MinNoticeHours:     s.MinNoticeHours,
		AdvanceBookingDays: s.AdvanceBookingDays,
		UpdatedAt:          s.UpdatedAt,
	}
}

func toDomainWeek(w WeekDTO) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		Monday:    toDomainDay(w.Monday),
		Tuesday:   toDomainDay(w.Tuesday),
		Wednesday: toDomainDay(w.Wednesday),
		Thursday:  toDomainDay(w.Thursday),
		Friday:    toDomainDay(w.Friday),
		Saturday:  toDomainDay(w.Saturday),
		Sunday:    toDomainDay(w.Sunday),
	}
}

func toDomainDay(d DayDTO) domain.DaySchedule {
	breaks := make([]domain.BreakInterval, len(d.Breaks))
	for i, br := range d.Breaks {
		breaks[i] = domain.BreakInterval{
			Start: types.TimeString(br.Start),
			End:   types.TimeString(br.End),
		}
	}

	return domain.DaySchedule{
		Enabled:   d.Enabled,
		WorkStart: types.TimeString(d.WorkStart),
		WorkEnd:   types.TimeString(d.WorkEnd),
		Breaks:    breaks,
	}
}

func fromDomainWeek(w domain.WeeklySchedule) WeekDTO {
	return WeekDTO{
		Monday:    fromDomainDay(w.Monday),
		Tuesday:   fromDomainDay(w.Tuesday),
		Wednesday: fromDomainDay(w.Wednesday),
		Thursday:  fromDomainDay(w.Thursday),
		Friday:    fromDomainDay(w.Friday),
		Saturday:  fromDomainDay(w.Saturday),
		Sunday:    fromDomainDay(w.Sunday),
	}
}

func fromDomainDay(d domain.DaySchedule) DayDTO {
	breaks := make([]BreakDTO, len(d.Breaks))
	for i, br := range d.Breaks {
		breaks[i] = BreakDTO{
			Start: br.Start.String(),
			End:   br.End.String(),
		}
	}

	return DayDTO{
		Enabled:   d.Enabled,
		WorkStart: d.WorkStart.String(),
		WorkEnd:   d.WorkEnd.String(),
		Breaks:    breaks,
	}
}
