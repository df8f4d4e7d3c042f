package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/providersettings"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeBookingRepo struct {
	existing   []*domain.Booking
	created    *domain.Booking
	syncStatus *domain.SyncStatus
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	stored.ID = 100
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) UpdateSyncStatus(_ context.Context, _ int64, syncStatus domain.SyncStatus) error {
	f.syncStatus = &syncStatus
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.ProviderSettings
	err      error
}

func (f *fakeSettingsRepo) GetByProviderID(_ context.Context, _ int64) (*domain.ProviderSettings, error) {
	return f.settings, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeCalendarSync struct {
	pushErr error
	pushed  bool
}

func (f *fakeCalendarSync) PushBooking(_ context.Context, _ *domain.Booking) error {
	f.pushed = true
	return f.pushErr
}

// inlineTxManager выполняет fn без настоящей транзакции
type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openSettings() *domain.ProviderSettings {
	day := domain.DaySchedule{
		Enabled:   true,
		WorkStart: types.TimeString("09:00"),
		WorkEnd:   types.TimeString("17:00"),
	}

	return &domain.ProviderSettings{
		ProviderID: 1,
		Timezone:   "UTC",
		Schedule: domain.WeeklySchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
		},
		SlotStepMinutes: 30,
	}
}

func activeService() *domain.Service {
	return &domain.Service{
		ID:              10,
		ProviderID:      1,
		Name:            "Consultation",
		DurationMinutes: 60,
		Price:           ptr.Ptr(50.0),
		Active:          true,
	}
}

func validRequest() *Request {
	return &Request{
		ClientID:   7,
		ProviderID: 1,
		ServiceID:  10,
		Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
	}
}

func newUseCase(bookingRepo *fakeBookingRepo, settings *fakeSettingsRepo, services *fakeServiceRepo, sync CalendarSyncClient, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, settings, services, sync, inlineTxManager{}, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newUseCase(repo, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Consultation", resp.ServiceName)
	assert.Equal(t, 50.0, resp.ServicePrice)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC), resp.EndsAt)

	// Бронирование сохраняется в UTC
	require.NotNil(t, repo.created)
	assert.Equal(t, time.UTC, repo.created.StartsAt.Location())
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				StartsAt: time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC),
				EndsAt:   time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := newUseCase(repo, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_BufferExtendsConflict(t *testing.T) {
	settings := openSettings()
	settings.BufferMinutes = 15

	// Существующая бронь заканчивается ровно в запрошенное время:
	// без буфера это не конфликт, с буфером - конфликт
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				StartsAt: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				EndsAt:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := newUseCase(repo, &fakeSettingsRepo{settings: settings}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ProviderClosed(t *testing.T) {
	req := validRequest()
	// 8 июня 2025 - воскресенье, в расписании выключено
	req.Date = time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProviderClosed)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	req := validRequest()
	req.StartTime = types.TimeString("16:30") // 16:30 + 60 минут > 17:00

	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestExecute_MinNoticeEnforced(t *testing.T) {
	settings := openSettings()
	settings.MinNoticeHours = 4

	// Запрос в 08:00 на слот 10:00 того же дня
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, &fakeServiceRepo{service: activeService()}, nil, now)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_AdvanceLimitEnforced(t *testing.T) {
	settings := openSettings()
	settings.AdvanceBookingDays = 7

	req := validRequest()
	req.Date = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: settings}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ProviderNotConfigured(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, &fakeServiceRepo{service: activeService()}, nil, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProviderNotConfigured)
}

func TestExecute_ServiceOfAnotherProvider(t *testing.T) {
	foreign := activeService()
	foreign.ProviderID = 2

	uc := newUseCase(&fakeBookingRepo{}, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: foreign}, nil, testNow)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_CalendarSyncSuccess(t *testing.T) {
	repo := &fakeBookingRepo{}
	sync := &fakeCalendarSync{}
	uc := newUseCase(repo, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, sync, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, sync.pushed)
	require.NotNil(t, repo.syncStatus)
	assert.Equal(t, domain.SyncSynced, *repo.syncStatus)
	assert.Equal(t, string(domain.SyncSynced), resp.SyncStatus)
}

func TestExecute_CalendarSyncFailureDoesNotBlockBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	sync := &fakeCalendarSync{pushErr: errors.New("calendar unavailable")}
	uc := newUseCase(repo, &fakeSettingsRepo{settings: openSettings()}, &fakeServiceRepo{service: activeService()}, sync, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	require.NotNil(t, repo.syncStatus)
	assert.Equal(t, domain.SyncFailed, *repo.syncStatus)
	assert.Equal(t, string(domain.SyncFailed), resp.SyncStatus)
}
