package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/providersettings"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// Service сервис настроек доступности провайдера
type Service struct {
	settingsRepo SettingsRepository
	validate     *validator.Validate
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		logger:       logger,
	}
}

// Get возвращает настройки провайдера
func (s *Service) Get(ctx context.Context, providerID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching settings for provider=%d", providerID)

	settings, err := s.settingsRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSchedule: settings for provider=%d not found", providerID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSchedule: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update создает или обновляет настройки провайдера
// Расписание проходит schema-валидацию (validator tags) и доменную
// валидацию инвариантов до записи в хранилище - дальше по коду оно
// считается корректным
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating settings for provider=%d by user=%d", req.ProviderID, req.UserID)

	// Редактировать расписание может только сам провайдер
	if req.UserID != req.ProviderID {
		s.logger.Warn("UpdateSchedule: access denied for user=%d to provider=%d", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateSchedule: schema validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	settings := req.ToDomainSettings()

	// Доменные инварианты: workEnd > workStart, перерывы внутри рабочего дня
	if err := settings.Schedule.Validate(); err != nil {
		s.logger.Warn("UpdateSchedule: schedule validation failed for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	if _, err := settings.Location(); err != nil {
		s.logger.Warn("UpdateSchedule: invalid timezone %q for provider=%d", req.Timezone, req.ProviderID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	updated, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated settings for provider=%d", req.ProviderID)
	return models.FromDomainSettings(updated), nil
}
