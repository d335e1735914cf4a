package set_day_availability

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

// SetDayAvailabilityRequest HTTP request model
type SetDayAvailabilityRequest struct {
	Date        string `json:"date"` // "2026-09-10"
	IsAvailable bool   `json:"isAvailable"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetDayAvailabilityRequest) ToServiceRequest(userID int64) (*models.SetDayAvailabilityRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.SetDayAvailabilityRequest{
		RequesterUserID: userID,
		Date:            date,
		IsAvailable:     r.IsAvailable,
	}, nil
}
