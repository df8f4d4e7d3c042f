package get_provider_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
// from/to задают даты включительно: to расширяется до конца дня
func ToServiceRequest(providerID, userID int64, fromStr, toStr, statusStr, includeInactiveStr string) (*models.GetProviderBookingsRequest, error) {
	req := &models.GetProviderBookingsRequest{
		ProviderID: providerID,
		UserID:     userID,
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		toEnd := to.Add(24 * time.Hour)
		req.To = &toEnd
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
