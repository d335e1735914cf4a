package get_barber_reservations

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/reservations/models"
)

type ReservationService interface {
	GetBarberReservations(ctx context.Context, req *models.GetBarberReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
