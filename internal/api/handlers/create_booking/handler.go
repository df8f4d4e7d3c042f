package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgServiceNotFound       = "услуга не найдена"
	msgProviderNotConfigured = "у провайдера не настроено расписание"
	msgProviderClosed        = "провайдер не работает в выбранную дату"
	msgOutsideWorkingHours   = "время вне рабочих часов провайдера"
	msgSlotNotAvailable      = "выбранный временной слот недоступен"
	msgInvalidBookingDate    = "некорректная дата бронирования"
	msgDateTooFar            = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook         = "слишком поздно для бронирования этого слота"
	msgInvalidInput          = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: client_id=%d, provider_id=%d", userID, req.ProviderID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: provider_id=%d, service_id=%d", req.ProviderID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrProviderNotConfigured):
			h.logger.Warn("POST /bookings - Provider not configured: provider_id=%d", req.ProviderID)
			handlers.RespondError(w, http.StatusConflict, msgProviderNotConfigured)

		case errors.Is(err, createBooking.ErrProviderClosed):
			h.logger.Warn("POST /bookings - Provider closed: provider_id=%d, date=%s", req.ProviderID, req.Date)
			handlers.RespondBadRequest(w, msgProviderClosed)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: provider_id=%d, date=%s, time=%s",
				req.ProviderID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: client_id=%d, provider_id=%d", userID, req.ProviderID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: client_id=%d, provider_id=%d", userID, req.ProviderID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client_id=%d, provider_id=%d", userID, req.ProviderID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, provider_id=%d, error=%v",
				userID, req.ProviderID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, provider_id=%d, error=%v",
				userID, req.ProviderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, provider_id=%d",
		result.ID, userID, req.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
