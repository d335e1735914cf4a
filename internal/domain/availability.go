package domain

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// DayAvailability is a whole-day open/closed override for a barber.
// Absence of a record means the day is available; records are upserted,
// never deleted.
type DayAvailability struct {
	ID          int64
	BarberID    int64
	Date        time.Time
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotBlackout marks a single (barber, date, time) slot as unbookable,
// independent of reservations. Upserted by its key, never deleted;
// IsUnavailable=false re-opens the slot.
type SlotBlackout struct {
	ID            int64
	BarberID      int64
	Date          time.Time
	StartTime     types.TimeString
	IsUnavailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
