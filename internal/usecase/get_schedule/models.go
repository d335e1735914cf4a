package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса расписания барбера на дату
type Request struct {
	BarberID int64
	Date     time.Time
}

// BarberInfo данные барбера, возвращаемые вместе с расписанием
type BarberInfo struct {
	ID                     int64
	FullName               string
	ManualLocation         string
	HaircutDurationMinutes int
	OpenTime               types.TimeString
	CloseTime              types.TimeString
}

// Slot один слот дневной сетки с полным статусом
type Slot struct {
	Time        types.TimeString
	Formatted   string
	Reserved    bool
	Unavailable bool
}

// Response модель ответа с полной дневной сеткой
type Response struct {
	Barber      BarberInfo
	Date        time.Time
	IsAvailable bool // дневное переопределение: при false день закрыт целиком
	Slots       []Slot
}
