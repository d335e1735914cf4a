package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модели

// CreateBarberRequest запрос на создание профиля барбера
type CreateBarberRequest struct {
	UserID                 int64
	FullName               string
	Phone                  string
	ManualLocation         string
	HaircutDurationMinutes int // при 0 используется значение по умолчанию
	OpenTime               types.TimeString
	CloseTime              types.TimeString
}

// ListBarbersRequest запрос списка барберов с фильтрацией
type ListBarbersRequest struct {
	Search   *string
	Location *string
}

// UpdateScheduleRequest запрос на обновление расписания барбера
type UpdateScheduleRequest struct {
	RequesterUserID        int64
	HaircutDurationMinutes int
	OpenTime               types.TimeString
	CloseTime              types.TimeString
}

// Response модели

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID                     int64  `json:"id"`
	UserID                 int64  `json:"userId"`
	FullName               string `json:"fullName"`
	Phone                  string `json:"phone"`
	ManualLocation         string `json:"manualLocation"`
	HaircutDurationMinutes int    `json:"haircutDuration"`
	OpenTime               string `json:"openTime"`
	CloseTime              string `json:"closeTime"`
	CreatedAt              string `json:"createdAt"`
	UpdatedAt              string `json:"updatedAt"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
	Total   int              `json:"total"`
}

// FromDomainBarber конвертирует доменного барбера в response
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	return &BarberResponse{
		ID:                     b.ID,
		UserID:                 b.UserID,
		FullName:               b.FullName,
		Phone:                  b.Phone,
		ManualLocation:         b.ManualLocation,
		HaircutDurationMinutes: b.HaircutDurationMinutes,
		OpenTime:               b.OpenTime.String(),
		CloseTime:              b.CloseTime.String(),
		CreatedAt:              b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBarberList конвертирует список доменных барберов в response
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	items := make([]BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		items = append(items, *FromDomainBarber(b))
	}
	return &BarberListResponse{
		Barbers: items,
		Total:   len(items),
	}
}
