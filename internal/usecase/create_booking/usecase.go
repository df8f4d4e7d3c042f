package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/providersettings"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/servicecatalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	serviceRepo  ServiceRepository
	calendarSync CalendarSyncClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// calendarSync может быть nil, если интеграция выключена в конфиге
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	serviceRepo ServiceRepository,
	calendarSync CalendarSyncClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		serviceRepo:  serviceRepo,
		calendarSync: calendarSync,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// снимок бронирований берется с блокировкой (FOR UPDATE) - две параллельные
// попытки занять один слот не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, provider=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.ProviderID != req.ProviderID || !service.Active {
		uc.logger.Warn("CreateBooking: service id=%d does not belong to provider id=%d or inactive",
			req.ServiceID, req.ProviderID)
		return nil, ErrServiceNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем настройки провайдера
		settings, err := uc.settingsRepo.GetByProviderID(txCtx, req.ProviderID)
		if err != nil {
			if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Warn("CreateBooking: provider id=%d has no settings", req.ProviderID)
				return ErrProviderNotConfigured
			}
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get provider settings: %v", ErrInternal, err)
		}

		loc, err := settings.Location()
		if err != nil {
			uc.logger.Error("CreateBooking: provider id=%d has invalid timezone %q", req.ProviderID, settings.Timezone)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		// 4.2. Валидация даты с учетом конфигурации
		if err := validateDate(req.Date, now, loc, settings.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 4.3. Расписание на локальный день провайдера
		localDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
		day := settings.Schedule.ForWeekday(localDate.Weekday())
		if !day.Enabled {
			uc.logger.Warn("CreateBooking: provider id=%d is closed on %s", req.ProviderID, req.Date.Format(domain.DateFormat))
			return ErrProviderClosed
		}

		// 4.4. Вычисляем абсолютный интервал бронирования
		startsAt, err := req.StartTime.OnDate(localDate, loc)
		if err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		endsAt := startsAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

		// 4.5. Интервал должен помещаться в рабочие часы и не задевать перерывы
		if err := validateWithinWorkingHours(day, localDate, loc, startsAt, endsAt); err != nil {
			uc.logger.Warn("CreateBooking: time validation failed: %v", err)
			return err
		}

		// 4.6. Минимальное время до начала брони
		if err := validateNotice(startsAt, now, settings.MinNoticeHours); err != nil {
			uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
			return err
		}

		// 4.7. Снимок активных бронирований дня с блокировкой (FOR UPDATE)
		dayEnd := localDate.AddDate(0, 0, 1)
		filter := domain.ProviderBookingsFilter{
			ProviderID:      req.ProviderID,
			From:            &localDate,
			To:              &dayEnd,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByProviderWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.8. Проверяем конфликт с учетом буфера провайдера
		if conflict := findConflict(startsAt, endsAt, settings.BufferMinutes, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d", conflict.ID)
			return ErrSlotNotAvailable
		}

		// 4.9. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			ClientID:        req.ClientID,
			ProviderID:      req.ProviderID,
			ServiceID:       req.ServiceID,
			StartsAt:        startsAt.UTC(),
			EndsAt:          endsAt.UTC(),
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusConfirmed,
			SyncStatus:      domain.SyncPending,
			ServiceName:     service.Name,
			ServicePrice:    servicePrice(service),
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Best-effort синхронизация с внешним календарем после коммита
	// Ошибка синка меняет только sync_status, само бронирование остается в силе
	uc.pushToCalendar(ctx, result)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		ProviderID:      result.ProviderID,
		ServiceID:       result.ServiceID,
		StartsAt:        result.StartsAt,
		EndsAt:          result.EndsAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		SyncStatus:      string(result.SyncStatus),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// pushToCalendar отправляет бронирование во внешний календарь и обновляет
// sync_status по результату
func (uc *UseCase) pushToCalendar(ctx context.Context, booking *domain.Booking) {
	if uc.calendarSync == nil {
		return
	}

	syncStatus := domain.SyncSynced
	if err := uc.calendarSync.PushBooking(ctx, booking); err != nil {
		uc.logger.Warn("CreateBooking: calendar sync failed for booking id=%d: %v", booking.ID, err)
		syncStatus = domain.SyncFailed
	}

	if err := uc.bookingRepo.UpdateSyncStatus(ctx, booking.ID, syncStatus); err != nil {
		uc.logger.Error("CreateBooking: failed to update sync status for booking id=%d: %v", booking.ID, err)
		return
	}

	booking.SyncStatus = syncStatus
}

// servicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func servicePrice(service *domain.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
