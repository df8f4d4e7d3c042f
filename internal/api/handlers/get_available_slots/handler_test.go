package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, handler *Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	useCase := &stubUseCase{
		resp: &getAvailableSlots.Response{
			ProviderID: 1,
			ServiceID:  10,
			Date:       time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Slots: []getAvailableSlots.Slot{
				{
					Start:     start,
					End:       start.Add(time.Hour),
					StartTime: types.TimeString("09:00"),
					EndTime:   types.TimeString("10:00"),
				},
			},
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	rec := doRequest(t, handler, "/api/v1/slots?providerId=1&serviceId=10&date=2025-06-02")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, int64(1), resp.ProviderID)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:00", resp.Slots[0].EndTime)
	assert.True(t, resp.Slots[0].Available)
}

func TestHandle_MissingParams(t *testing.T) {
	handler := NewHandler(&stubUseCase{}, nopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{"no provider", "/api/v1/slots?serviceId=10&date=2025-06-02"},
		{"no service", "/api/v1/slots?providerId=1&date=2025-06-02"},
		{"no date", "/api/v1/slots?providerId=1&serviceId=10"},
		{"bad provider", "/api/v1/slots?providerId=abc&serviceId=10&date=2025-06-02"},
		{"bad date", "/api/v1/slots?providerId=1&serviceId=10&date=02.06.2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, handler, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_ServiceNotFound(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: getAvailableSlots.ErrServiceNotFound}, nopLogger{})

	rec := doRequest(t, handler, "/api/v1/slots?providerId=1&serviceId=10&date=2025-06-02")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&stubUseCase{err: getAvailableSlots.ErrInternal}, nopLogger{})

	rec := doRequest(t, handler, "/api/v1/slots?providerId=1&serviceId=10&date=2025-06-02")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
