package get_provider_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
	msgNotFound          = "расписание провайдера не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем providerId из URL
	vars := mux.Vars(r)
	providerIDStr := vars["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedule - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Получаем настройки провайдера
	result, err := h.service.Get(r.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSettingsNotFound):
			h.logger.Warn("GET /providers/{id}/schedule - Settings not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /providers/{id}/schedule - Failed to get schedule: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedule - Schedule retrieved successfully: provider_id=%d", providerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
