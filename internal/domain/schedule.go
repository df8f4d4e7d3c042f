package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при нарушении инвариантов расписания
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// BreakInterval represents a break inside working hours as a closed-open
// interval [Start, End). Breaks in storage are not required to be sorted
// or non-overlapping.
type BreakInterval struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks the break interval bounds
func (b BreakInterval) Validate() error {
	if err := b.Start.Validate(); err != nil {
		return fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
	}
	if err := b.End.Validate(); err != nil {
		return fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
	}
	if !b.End.IsAfter(b.Start) {
		return fmt.Errorf("%w: break end %s must be after start %s", ErrInvalidSchedule, b.End, b.Start)
	}
	return nil
}

// DaySchedule represents working hours for a single weekday
type DaySchedule struct {
	Enabled   bool             `json:"enabled"`
	WorkStart types.TimeString `json:"workStart"`
	WorkEnd   types.TimeString `json:"workEnd"`
	Breaks    []BreakInterval  `json:"breaks"`
}

// Validate checks the day invariants: workEnd > workStart when enabled,
// every break well-formed and inside the working window
func (d DaySchedule) Validate() error {
	if !d.Enabled {
		return nil
	}

	if err := d.WorkStart.Validate(); err != nil {
		return fmt.Errorf("%w: workStart: %v", ErrInvalidSchedule, err)
	}
	if err := d.WorkEnd.Validate(); err != nil {
		return fmt.Errorf("%w: workEnd: %v", ErrInvalidSchedule, err)
	}
	if !d.WorkEnd.IsAfter(d.WorkStart) {
		return fmt.Errorf("%w: workEnd %s must be after workStart %s", ErrInvalidSchedule, d.WorkEnd, d.WorkStart)
	}

	for i, br := range d.Breaks {
		if err := br.Validate(); err != nil {
			return fmt.Errorf("break #%d: %w", i, err)
		}
		if br.Start.IsBefore(d.WorkStart) || br.End.IsAfter(d.WorkEnd) {
			return fmt.Errorf("%w: break #%d [%s, %s) is outside working hours [%s, %s)",
				ErrInvalidSchedule, i, br.Start, br.End, d.WorkStart, d.WorkEnd)
		}
	}

	return nil
}

// WeeklySchedule represents a provider's weekly working schedule.
// Invariant: all seven days are always present.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday returns the day schedule for the given weekday
func (s WeeklySchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DaySchedule{Enabled: false}
	}
}

// Validate checks every day of the week
func (s WeeklySchedule) Validate() error {
	days := []struct {
		name string
		day  DaySchedule
	}{
		{"monday", s.Monday},
		{"tuesday", s.Tuesday},
		{"wednesday", s.Wednesday},
		{"thursday", s.Thursday},
		{"friday", s.Friday},
		{"saturday", s.Saturday},
		{"sunday", s.Sunday},
	}

	for _, d := range days {
		if err := d.day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}

	return nil
}

// Value реализует driver.Valuer - расписание хранится в БД как JSONB документ
func (s WeeklySchedule) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan реализует sql.Scanner с валидацией схемы на границе хранилища
// Невалидный документ из БД не должен попадать в генератор слотов
func (s *WeeklySchedule) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidSchedule, src)
	}

	var parsed WeeklySchedule
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if err := parsed.Validate(); err != nil {
		return err
	}

	*s = parsed
	return nil
}
