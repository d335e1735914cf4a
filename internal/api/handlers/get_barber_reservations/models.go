package get_barber_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/reservations/models"
)

// ToServiceRequest конвертирует параметры запроса в модель сервиса
// Опциональные query params: date (YYYY-MM-DD), activeOnly (true/false)
func ToServiceRequest(barberID, userID int64, dateStr, activeOnlyStr string) (*models.GetBarberReservationsRequest, error) {
	req := &models.GetBarberReservationsRequest{
		BarberID:        barberID,
		RequesterUserID: userID,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if activeOnlyStr != "" {
		activeOnly, err := strconv.ParseBool(activeOnlyStr)
		if err != nil {
			return nil, err
		}
		req.ActiveOnly = activeOnly
	}

	return req, nil
}
