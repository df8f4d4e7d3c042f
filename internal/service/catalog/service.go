package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListByProvider возвращает активные услуги провайдера
// Пустой каталог - нормальный результат, не ошибка
func (s *Service) ListByProvider(ctx context.Context, providerID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for provider=%d", providerID)

	services, err := s.serviceRepo.ListByProvider(ctx, providerID)
	if err != nil {
		s.logger.Error("ListServices: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: ListByProvider - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services for provider=%d", len(services), providerID)
	return models.FromDomainServices(services), nil
}
