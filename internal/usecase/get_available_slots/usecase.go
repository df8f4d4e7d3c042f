package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/providersettings"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/servicecatalog"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	serviceRepo  ServiceRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Отсутствие настроек у провайдера - не ошибка: возвращается пустой список
// слотов, чтобы UI бронирования оставался работоспособным. Отсутствие
// услуги - явная ошибка ErrServiceNotFound.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, service=%d, date=%s",
		req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных (до любого похода в хранилище)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу - она определяет длительность слота
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Услуга другого провайдера или деактивированная считается не найденной
	if service.ProviderID != req.ProviderID || !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%d does not belong to provider id=%d or inactive",
			req.ServiceID, req.ProviderID)
		return nil, ErrServiceNotFound
	}

	// 4. Получаем настройки провайдера (расписание + таймзона + политика)
	settings, err := uc.settingsRepo.GetByProviderID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			// Провайдер без настроенного расписания - нормальная пустая выдача
			uc.logger.Info("GetAvailableSlots: provider id=%d has no settings, returning empty slots", req.ProviderID)
			return emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider settings: %v", ErrInternal, err)
	}

	loc, err := settings.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: provider id=%d has invalid timezone %q", req.ProviderID, settings.Timezone)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Определяем локальный день провайдера и его расписание
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)
	day := settings.Schedule.ForWeekday(dayStart.Weekday())

	// 6. Получаем блокирующие бронирования на этот день
	filter := domain.ProviderBookingsFilter{
		ProviderID:      req.ProviderID,
		From:            &dayStart,
		To:              &dayEnd,
		IncludeInactive: false, // Только pending/confirmed занимают слоты
	}

	bookings, err := uc.bookingRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	slots, err := GenerateSlots(
		day,
		dayStart,
		loc,
		service.DurationMinutes,
		settings.StepMinutes(),
		bookings,
		now,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 8. Применяем минимальное время до бронирования поверх чистого генератора
	slots = filterByNotice(slots, now, settings.MinNoticeHours)

	uc.logger.Info("GetAvailableSlots: generated %d slots for provider=%d, service=%d, date=%s",
		len(slots), req.ProviderID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Slots:      toResponseSlots(slots, loc),
	}, nil
}

// filterByNotice отбрасывает слоты, начинающиеся раньше now + minNoticeHours
// Генератор сам применяет только отсечку "в прошлом"; политика минимального
// уведомления - отдельный слой поверх него
func filterByNotice(slots []domain.CandidateSlot, now time.Time, minNoticeHours int) []domain.CandidateSlot {
	if minNoticeHours <= 0 {
		return slots
	}

	cutoff := now.Add(time.Duration(minNoticeHours) * time.Hour)
	filtered := make([]domain.CandidateSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Start.Before(cutoff) {
			continue
		}
		filtered = append(filtered, slot)
	}

	return filtered
}

// toResponseSlots конвертирует слоты генератора в модель ответа,
// добавляя время на стене в таймзоне провайдера
func toResponseSlots(slots []domain.CandidateSlot, loc *time.Location) []Slot {
	result := make([]Slot, len(slots))
	for i, slot := range slots {
		result[i] = Slot{
			Start:     slot.Start,
			End:       slot.End,
			StartTime: types.NewTimeString(slot.Start.In(loc)),
			EndTime:   types.NewTimeString(slot.End.In(loc)),
		}
	}
	return result
}

func emptyResponse(req *Request) *Response {
	return &Response{
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Slots:      []Slot{},
	}
}
