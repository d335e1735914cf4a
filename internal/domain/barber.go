package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var (
	// ErrInvalidWorkingHours is returned when openTime is not strictly before closeTime.
	ErrInvalidWorkingHours = errors.New("domain: open time must be before close time")

	// ErrInvalidHaircutDuration is returned when the haircut duration is out of bounds.
	ErrInvalidHaircutDuration = errors.New("domain: haircut duration out of bounds")
)

// Barber represents a barber profile with its working-hours schedule.
// The schedule is edited rarely and read on every schedule or booking query.
type Barber struct {
	ID                     int64
	UserID                 int64 // identity of the user behind this profile
	FullName               string
	Phone                  string
	ManualLocation         string
	HaircutDurationMinutes int
	OpenTime               types.TimeString
	CloseTime              types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateSchedule checks the schedule invariants: openTime < closeTime and
// a haircut duration within the allowed bounds.
func (b *Barber) ValidateSchedule() error {
	if err := b.OpenTime.Validate(); err != nil {
		return err
	}
	if err := b.CloseTime.Validate(); err != nil {
		return err
	}
	if !b.OpenTime.IsBefore(b.CloseTime) {
		return ErrInvalidWorkingHours
	}
	if b.HaircutDurationMinutes < MinHaircutDurationMinutes || b.HaircutDurationMinutes > MaxHaircutDurationMinutes {
		return ErrInvalidHaircutDuration
	}
	return nil
}

// WorksAt reports whether t falls within the barber's working hours,
// i.e. openTime <= t < closeTime.
func (b *Barber) WorksAt(t types.TimeString) bool {
	return !t.IsBefore(b.OpenTime) && t.IsBefore(b.CloseTime)
}

// BarberFilter filter for searching barbers by name and location.
// Nil fields mean "no filtering".
type BarberFilter struct {
	Search   *string // substring of the full name, case-insensitive
	Location *string // substring of the manual location, case-insensitive
}
