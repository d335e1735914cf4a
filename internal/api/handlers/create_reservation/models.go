package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	createReservation "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	BarberID  int64  `json:"barberId"`
	Date      string `json:"date"`      // "2026-09-10"
	StartTime string `json:"startTime"` // "10:00"
}

// CreateReservationResponse HTTP response model, резервация в конверте
type CreateReservationResponse struct {
	Reservation ReservationResponse `json:"reservation"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64  `json:"id"`
	ClientID    int64  `json:"clientId"`
	BarberID    int64  `json:"barberId"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	BarberName  string `json:"barberName"`
	BarberPhone string `json:"barberPhone"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(clientID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientID:  clientID,
		BarberID:  r.BarberID,
		Date:      date,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{Reservation: ReservationResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		BarberID:    resp.BarberID,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		BarberName:  resp.BarberName,
		BarberPhone: resp.BarberPhone,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}}
}
