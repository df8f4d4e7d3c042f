package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/providersettings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

type fakeSettingsRepo struct {
	settings *domain.ProviderSettings
	getErr   error
	upserted *domain.ProviderSettings
}

func (f *fakeSettingsRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderSettings, error) {
	return f.settings, f.getErr
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.ProviderSettings) (*domain.ProviderSettings, error) {
	f.upserted = settings
	return settings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		ProviderID: 1,
		UserID:     1,
		Timezone:   "UTC",
		Schedule: models.WeekDTO{
			Monday: models.DayDTO{
				Enabled:   true,
				WorkStart: "09:00",
				WorkEnd:   "17:00",
				Breaks: []models.BreakDTO{
					{Start: "12:00", End: "13:00"},
				},
			},
		},
		SlotStepMinutes: 30,
		BufferMinutes:   10,
		MinNoticeHours:  2,
	}
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ProviderID)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.True(t, resp.Schedule.Monday.Enabled)
	assert.Equal(t, 30, resp.SlotStepMinutes)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, 10, repo.upserted.BufferMinutes)
}

func TestUpdate_DefaultsStepWhenOmitted(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, nopLogger{})

	req := validUpdateRequest()
	req.SlotStepMinutes = 0

	resp, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotStepMinutes, resp.SlotStepMinutes)
}

func TestUpdate_AccessDenied(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	req := validUpdateRequest()
	req.UserID = 2

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_RejectsUnknownTimezone(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	req := validUpdateRequest()
	req.Timezone = "Mars/Olympus"

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdate_RejectsInvertedWorkingHours(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	req := validUpdateRequest()
	req.Schedule.Monday.WorkStart = "17:00"
	req.Schedule.Monday.WorkEnd = "09:00"

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdate_RejectsBreakOutsideWorkingHours(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	req := validUpdateRequest()
	req.Schedule.Monday.Breaks = []models.BreakDTO{
		{Start: "08:00", End: "10:00"},
	}

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdate_RejectsMalformedTime(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, nopLogger{})

	req := validUpdateRequest()
	req.Schedule.Monday.WorkStart = "9am"

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestGet_ReturnsSettings(t *testing.T) {
	stored := &domain.ProviderSettings{
		ProviderID: 1,
		Timezone:   "UTC",
		Schedule: domain.WeeklySchedule{
			Monday: domain.DaySchedule{
				Enabled:   true,
				WorkStart: "09:00",
				WorkEnd:   "17:00",
			},
		},
		SlotStepMinutes: 15,
	}

	svc := NewService(&fakeSettingsRepo{settings: stored}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, 15, resp.SlotStepMinutes)
	assert.Equal(t, "09:00", resp.Schedule.Monday.WorkStart)
}
