package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	getSchedule "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_schedule"
)

// BarberInfo данные барбера в ответе расписания
type BarberInfo struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	ManualLocation  string `json:"manualLocation"`
	HaircutDuration int    `json:"haircutDuration"`
	OpenTime        string `json:"openTime"`
	CloseTime       string `json:"closeTime"`
}

// SlotResponse один слот дневной сетки
type SlotResponse struct {
	Time        string `json:"time"`      // "10:00"
	Formatted   string `json:"formatted"` // "10:00 AM"
	Reserved    bool   `json:"reserved"`
	Unavailable bool   `json:"unavailable"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Barber      BarberInfo     `json:"barber"`
	Date        string         `json:"date"`
	IsAvailable bool           `json:"isAvailable"`
	TimeSlots   []SlotResponse `json:"timeSlots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(barberID int64, dateStr string) (*getSchedule.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getSchedule.Request{
		BarberID: barberID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:        s.Time.String(),
			Formatted:   s.Formatted,
			Reserved:    s.Reserved,
			Unavailable: s.Unavailable,
		})
	}

	return &ScheduleResponse{
		Barber: BarberInfo{
			ID:              resp.Barber.ID,
			FullName:        resp.Barber.FullName,
			ManualLocation:  resp.Barber.ManualLocation,
			HaircutDuration: resp.Barber.HaircutDurationMinutes,
			OpenTime:        resp.Barber.OpenTime.String(),
			CloseTime:       resp.Barber.CloseTime.String(),
		},
		Date:        resp.Date.Format(domain.DateFormat),
		IsAvailable: resp.IsAvailable,
		TimeSlots:   slots,
	}
}
