package set_day_availability

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type AvailabilityService interface {
	SetDayAvailability(ctx context.Context, barberID int64, req *models.SetDayAvailabilityRequest) (*models.DayAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
