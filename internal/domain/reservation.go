package domain

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
// The only transitions are active -> cancelled_by_client and
// active -> cancelled_by_barber; there is no update-in-place and no
// re-activation.
type ReservationStatus string

const (
	StatusActive            ReservationStatus = "active"
	StatusCancelledByClient ReservationStatus = "cancelled_by_client"
	StatusCancelledByBarber ReservationStatus = "cancelled_by_barber"
)

// Reservation represents a booked haircut slot.
type Reservation struct {
	ID        int64
	ClientID  int64
	BarberID  int64
	Date      time.Time // calendar date, time part is zero
	StartTime types.TimeString

	Status ReservationStatus

	// Denormalized barber data, captured at booking time
	BarberName  string
	BarberPhone string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation occupies its slot.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsCancelled reports whether the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelledByClient || r.Status == StatusCancelledByBarber
}

// CanBeCancelled reports whether a cancellation transition is allowed
// from the current status. The no-retroactive-cancellation rule is
// checked separately against an injected "now".
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// ReservationFilter фильтр для выборки резерваций
type ReservationFilter struct {
	BarberID   *int64     // резервации конкретного барбера
	ClientID   *int64     // резервации конкретного клиента
	Date       *time.Time // конкретная дата (опционально)
	ActiveOnly bool       // только активные резервации
}
