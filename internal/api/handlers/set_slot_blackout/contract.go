package set_slot_blackout

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/availability/models"
)

type AvailabilityService interface {
	SetSlotBlackout(ctx context.Context, barberID int64, req *models.SetSlotBlackoutRequest) (*models.SlotBlackoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
