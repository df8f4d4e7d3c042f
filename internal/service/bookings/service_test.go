package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	bookings  []*domain.Booking
	cancelled *domain.BookingStatus
	updated   *domain.BookingStatus
	reason    string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) GetByProviderWithFilter(_ context.Context, _ domain.ProviderBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, status domain.BookingStatus) error {
	f.updated = &status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, status domain.BookingStatus, reason string) error {
	f.cancelled = &status
	f.reason = reason
	return nil
}

type fakeCalendarSync struct {
	removed   bool
	removeErr error
}

func (f *fakeCalendarSync) RemoveBooking(_ context.Context, _, _ int64) error {
	f.removed = true
	return f.removeErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		ClientID:   7,
		ProviderID: 3,
		ServiceID:  10,
		StartsAt:   time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC),
		Status:     domain.StatusConfirmed,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nil, nopLogger{})

	// Клиент видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Провайдер видит бронирования на себя
	_, err = svc.GetByID(context.Background(), 1, 3)
	require.NoError(t, err)

	// Посторонний пользователь - нет
	_, err = svc.GetByID(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ByClient(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	sync := &fakeCalendarSync{}
	svc := NewService(repo, sync, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: "изменились планы",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.cancelled)
	assert.Equal(t, domain.StatusCancelledByClient, *repo.cancelled)
	assert.Equal(t, "изменились планы", repo.reason)
	assert.True(t, sync.removed)
}

func TestCancel_ByProvider(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 3})
	require.NoError(t, err)

	require.NotNil(t, repo.cancelled)
	assert.Equal(t, domain.StatusCancelledByProvider, *repo.cancelled)
}

func TestCancel_ByStranger(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.cancelled)
}

func TestCancel_AlreadyCompleted(t *testing.T) {
	completed := confirmedBooking()
	completed.Status = domain.StatusCompleted

	repo := &fakeBookingRepo{booking: completed}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_CalendarFailureDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	sync := &fakeCalendarSync{removeErr: errors.New("calendar unavailable")}
	svc := NewService(repo, sync, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 7})
	assert.NoError(t, err)
	require.NotNil(t, repo.cancelled)
}

func TestGetProviderBookings_ProviderOnly(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking()}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		ProviderID: 3,
		UserID:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		ProviderID: 3,
		UserID:     7,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProviderBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nil, nopLogger{})

	_, err := svc.GetProviderBookings(context.Background(), &models.GetProviderBookingsRequest{
		ProviderID: 3,
		UserID:     3,
		Status:     ptr.Ptr("unknown"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ProviderOnly(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nil, nopLogger{})

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, 3, "completed"))
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StatusCompleted, *repo.updated)

	err := svc.UpdateStatus(context.Background(), 1, 7, "completed")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	// Провайдер может выставить только completed/no_show.
	// Отмена и возврат в активные статусы через этот метод запрещены
	statuses := []string{
		"whatever",
		"cancelled_by_client",
		"cancelled_by_provider",
		"pending",
		"confirmed",
	}

	for _, status := range statuses {
		t.Run(status, func(t *testing.T) {
			repo := &fakeBookingRepo{booking: confirmedBooking()}
			svc := NewService(repo, nil, nopLogger{})

			err := svc.UpdateStatus(context.Background(), 1, 3, status)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.updated)
		})
	}
}

func TestUpdateStatus_NoShow(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, nil, nopLogger{})

	require.NoError(t, svc.UpdateStatus(context.Background(), 1, 3, "no_show"))
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.StatusNoShow, *repo.updated)
}
