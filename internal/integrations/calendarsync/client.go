package calendarsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с календарным сервисом
// Интеграция best-effort: недоступность календаря никогда не блокирует
// бронирование и не влияет на расчет доступных слотов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календарного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PushBooking отправляет бронирование во внешний календарь провайдера
func (c *Client) PushBooking(ctx context.Context, booking *domain.Booking) error {
	url := fmt.Sprintf("%s/internal/providers/%d/events", c.baseURL, booking.ProviderID)

	payload, err := json.Marshal(PushEventRequest{
		BookingID:   booking.ID,
		ProviderID:  booking.ProviderID,
		ServiceName: booking.ServiceName,
		StartsAt:    booking.StartsAt,
		EndsAt:      booking.EndsAt,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Недоступность календаря - graceful degradation, бронирование
		// остается в силе с sync_status=failed
		c.log.Error("CalendarSync unavailable, applying graceful degradation for booking_id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, booking.ID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		c.log.Info("CalendarSync: booking_id=%d pushed to provider calendar", booking.ID)
		return nil
	case http.StatusConflict:
		return fmt.Errorf("%w: booking_id=%d", ErrSyncRejected, booking.ID)
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// RemoveBooking удаляет событие бронирования из внешнего календаря
func (c *Client) RemoveBooking(ctx context.Context, providerID, bookingID int64) error {
	url := fmt.Sprintf("%s/internal/providers/%d/events/%d", c.baseURL, providerID, bookingID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CalendarSync unavailable, applying graceful degradation for booking_id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, bookingID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		// Отсутствие события в календаре при удалении не считаем ошибкой
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
