package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// Request модели

// GetClientReservationsRequest запрос истории резерваций клиента
type GetClientReservationsRequest struct {
	ClientID        int64      // чьи резервации запрашиваются
	RequesterUserID int64      // кто запрашивает
	Date            *time.Time // конкретная дата (опционально)
}

// GetBarberReservationsRequest запрос резерваций барбера
type GetBarberReservationsRequest struct {
	BarberID        int64
	RequesterUserID int64
	Date            *time.Time // конкретная дата (опционально)
	ActiveOnly      bool
}

// CancelReservationRequest запрос на отмену резервации
// Статус отмены определяется по владению, а не по заявленной роли
type CancelReservationRequest struct {
	UserID int64 // кто отменяет
}

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	BarberID    int64  `json:"barberId"`
	Date        string `json:"date"`      // "2026-09-10"
	StartTime   string `json:"startTime"` // "10:00"
	Status      string `json:"status"`
	BarberName  string `json:"barberName"`
	BarberPhone string `json:"barberPhone"`

	// Контакты клиента, обогащаются из сервиса профилей
	// в списке резерваций барбера
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную резервацию в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		BarberID:    r.BarberID,
		Date:        r.Date.Format(domain.DateFormat),
		StartTime:   r.StartTime.String(),
		Status:      string(r.Status),
		BarberName:  r.BarberName,
		BarberPhone: r.BarberPhone,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список доменных резерваций в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	items := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: items,
		Total:        len(items),
	}
}
