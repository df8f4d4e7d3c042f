package get_provider_services

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const (
	msgInvalidProviderID = "некорректный ID провайдера"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем providerId из URL
	vars := mux.Vars(r)
	providerIDStr := vars["providerId"]

	providerID, err := strconv.ParseInt(providerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/services - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Получаем активные услуги провайдера
	result, err := h.service.ListByProvider(r.Context(), providerID)
	if err != nil {
		h.logger.Error("GET /providers/{id}/services - Failed to get services: provider_id=%d, error=%v",
			providerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /providers/{id}/services - Services retrieved successfully: provider_id=%d, count=%d",
		providerID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
