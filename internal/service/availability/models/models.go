package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модели

// SetDayAvailabilityRequest запрос на переключение доступности дня
type SetDayAvailabilityRequest struct {
	RequesterUserID int64
	Date            time.Time
	IsAvailable     bool
}

// SetSlotBlackoutRequest запрос на блокировку или разблокировку слота
type SetSlotBlackoutRequest struct {
	RequesterUserID int64
	Date            time.Time
	StartTime       types.TimeString
	IsUnavailable   bool
}

// Response модели

// DayAvailabilityResponse ответ с дневным переопределением
type DayAvailabilityResponse struct {
	ID          int64  `json:"id"`
	BarberID    int64  `json:"barberId"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	UpdatedAt   string `json:"updatedAt"`
}

// SlotBlackoutResponse ответ с блокировкой слота
type SlotBlackoutResponse struct {
	ID            int64  `json:"id"`
	BarberID      int64  `json:"barberId"`
	Date          string `json:"date"`
	StartTime     string `json:"time"`
	IsUnavailable bool   `json:"isUnavailable"`
	UpdatedAt     string `json:"updatedAt"`
}

// FromDomainDayAvailability конвертирует доменное переопределение в response
func FromDomainDayAvailability(d *domain.DayAvailability) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		ID:          d.ID,
		BarberID:    d.BarberID,
		Date:        d.Date.Format(domain.DateFormat),
		IsAvailable: d.IsAvailable,
		UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotBlackout конвертирует доменную блокировку в response
func FromDomainSlotBlackout(b *domain.SlotBlackout) *SlotBlackoutResponse {
	return &SlotBlackoutResponse{
		ID:            b.ID,
		BarberID:      b.BarberID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		IsUnavailable: b.IsUnavailable,
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}
