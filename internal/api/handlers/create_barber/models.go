package create_barber

import (
	"github.com/m04kA/SMC-BarbershopService/internal/service/barbers/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// CreateBarberRequest HTTP request model
type CreateBarberRequest struct {
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	ManualLocation  string `json:"manualLocation"`
	HaircutDuration int    `json:"haircutDuration"` // при 0 используется значение по умолчанию
	OpenTime        string `json:"openTime"`        // "09:00"
	CloseTime       string `json:"closeTime"`       // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBarberRequest) ToServiceRequest(userID int64) (*models.CreateBarberRequest, error) {
	openTime, err := types.NewTimeStringFromString(r.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(r.CloseTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateBarberRequest{
		UserID:                 userID,
		FullName:               r.FullName,
		Phone:                  r.Phone,
		ManualLocation:         r.ManualLocation,
		HaircutDurationMinutes: r.HaircutDuration,
		OpenTime:               openTime,
		CloseTime:              closeTime,
	}, nil
}
