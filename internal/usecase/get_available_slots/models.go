package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса свободных слотов барбера на дату
type Request struct {
	BarberID int64
	Date     time.Time
}

// BarberInfo данные барбера, возвращаемые вместе со слотами
type BarberInfo struct {
	ID                     int64
	FullName               string
	ManualLocation         string
	HaircutDurationMinutes int
	OpenTime               types.TimeString
	CloseTime              types.TimeString
}

// Slot свободный для записи слот
type Slot struct {
	Time      types.TimeString
	Formatted string
}

// Response модель ответа со списком свободных слотов
// Для закрытого дня список пуст
type Response struct {
	Barber BarberInfo
	Date   time.Time
	Slots  []Slot
}
