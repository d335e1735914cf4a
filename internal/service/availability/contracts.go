package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности
type AvailabilityRepository interface {
	UpsertDayOverride(ctx context.Context, override *domain.DayAvailability) (*domain.DayAvailability, error)
	UpsertSlotBlackout(ctx context.Context, blackout *domain.SlotBlackout) (*domain.SlotBlackout, error)
	ListSlotBlackouts(ctx context.Context, barberID int64, date time.Time) ([]*domain.SlotBlackout, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
