package domain

import (
	"errors"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// ErrInvalidSlotStep is returned when the slot step is not positive.
var ErrInvalidSlotStep = errors.New("domain: slot step must be positive")

// TimeSlot represents one position on a barber's daily grid.
// Slots are derived from the schedule on every read and never stored.
type TimeSlot struct {
	Time        types.TimeString // slot start, HH:MM
	Formatted   string           // 12-hour display form, e.g. "1:30 PM"
	Reserved    bool             // an active reservation starts exactly at Time
	Unavailable bool             // blacked out by the barber
}

// IsBookable reports whether the slot can accept a new reservation.
func (s *TimeSlot) IsBookable() bool {
	return !s.Reserved && !s.Unavailable
}

// GenerateTimeSlots walks the working window [open, close) in steps of
// stepMinutes and produces the full daily grid. A slot belongs to the
// grid only if its start lies strictly before close, so a trailing
// partial interval yields no slot. Reservations and blackouts mark
// slots by exact start-time match.
func GenerateTimeSlots(open, close types.TimeString, stepMinutes int, reservations []*Reservation, blackouts []*SlotBlackout) ([]TimeSlot, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidSlotStep
	}

	openMin, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return nil, err
	}

	reserved := make(map[types.TimeString]bool, len(reservations))
	for _, r := range reservations {
		if r.IsActive() {
			reserved[r.StartTime] = true
		}
	}

	blackedOut := make(map[types.TimeString]bool, len(blackouts))
	for _, b := range blackouts {
		if b.IsUnavailable {
			blackedOut[b.StartTime] = true
		}
	}

	slots := make([]TimeSlot, 0, (closeMin-openMin)/stepMinutes+1)
	for t := openMin; t < closeMin; t += stepMinutes {
		ts, err := types.FromMinutes(t)
		if err != nil {
			return nil, err
		}
		formatted, err := ts.Format12Hour()
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{
			Time:        ts,
			Formatted:   formatted,
			Reserved:    reserved[ts],
			Unavailable: blackedOut[ts],
		})
	}

	return slots, nil
}

// BookableOnly filters the grid down to slots that are neither reserved
// nor blacked out, preserving order.
func BookableOnly(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, len(slots))
	for _, s := range slots {
		if s.IsBookable() {
			out = append(out, s)
		}
	}
	return out
}

// ApplyDayOverride forces every slot to unavailable when the whole day
// is closed by a day-level override. The override wins over per-slot
// state, including reserved flags.
func ApplyDayOverride(slots []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, len(slots))
	for i, s := range slots {
		s.Reserved = false
		s.Unavailable = true
		out[i] = s
	}
	return out
}
