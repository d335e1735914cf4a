package update_schedule

import (
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	HaircutDuration int    `json:"haircutDuration"`
	OpenTime        string `json:"openTime"`  // "09:00"
	CloseTime       string `json:"closeTime"` // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64) (*models.UpdateScheduleRequest, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &models.UpdateScheduleRequest{
		RequesterUserID:        userID,
		HaircutDurationMinutes: r.HaircutDuration,
		OpenTime:               openTime,
		CloseTime:              closeTime,
	}, nil
}
