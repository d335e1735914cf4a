package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
)

// BarberInfo данные барбера в ответе со слотами
type BarberInfo struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	ManualLocation  string `json:"manualLocation"`
	HaircutDuration int    `json:"haircutDuration"`
	OpenTime        string `json:"openTime"`
	CloseTime       string `json:"closeTime"`
}

// SlotResponse свободный для записи слот
type SlotResponse struct {
	Time      string `json:"time"`      // "10:00"
	Formatted string `json:"formatted"` // "10:00 AM"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Barber    BarberInfo     `json:"barber"`
	Date      string         `json:"date"`
	TimeSlots []SlotResponse `json:"timeSlots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(barberID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BarberID: barberID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Formatted: s.Formatted,
		})
	}

	return &AvailableSlotsResponse{
		Barber: BarberInfo{
			ID:              resp.Barber.ID,
			FullName:        resp.Barber.FullName,
			ManualLocation:  resp.Barber.ManualLocation,
			HaircutDuration: resp.Barber.HaircutDurationMinutes,
			OpenTime:        resp.Barber.OpenTime.String(),
			CloseTime:       resp.Barber.CloseTime.String(),
		},
		Date:      resp.Date.Format(domain.DateFormat),
		TimeSlots: slots,
	}
}
