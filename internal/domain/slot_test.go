package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

func TestGenerateTimeSlots_FullDay(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "18:00", 30, nil, nil)
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1].Time)
	assert.Equal(t, "9:00 AM", slots[0].Formatted)
	assert.Equal(t, "5:30 PM", slots[len(slots)-1].Formatted)

	for _, s := range slots {
		assert.False(t, s.Reserved)
		assert.False(t, s.Unavailable)
		assert.True(t, s.IsBookable())
	}
}

func TestGenerateTimeSlots_NoPartialTrailingSlot(t *testing.T) {
	// Membership is by start time only: with a 30-minute step the 10:00
	// slot fits before a 10:15 close even though it would run past it.
	slots, err := GenerateTimeSlots("09:00", "10:15", 30, nil, nil)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("10:00"), slots[2].Time)

	// A start exactly at close is excluded.
	slots, err = GenerateTimeSlots("09:00", "10:00", 30, nil, nil)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:30"), slots[1].Time)
}

func TestGenerateTimeSlots_MarksReservations(t *testing.T) {
	reservations := []*Reservation{
		{StartTime: "10:00", Status: StatusActive},
		{StartTime: "11:00", Status: StatusCancelledByClient}, // freed slot
		{StartTime: "20:00", Status: StatusActive},            // outside the grid
	}

	slots, err := GenerateTimeSlots("09:00", "12:00", 30, reservations, nil)
	require.NoError(t, err)
	require.Len(t, slots, 6)

	byTime := make(map[types.TimeString]TimeSlot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.True(t, byTime["10:00"].Reserved)
	assert.False(t, byTime["11:00"].Reserved, "cancelled reservation must not occupy the slot")
	assert.False(t, byTime["09:00"].Reserved)
}

func TestGenerateTimeSlots_MarksBlackouts(t *testing.T) {
	blackouts := []*SlotBlackout{
		{StartTime: "09:30", IsUnavailable: true},
		{StartTime: "10:30", IsUnavailable: false}, // re-opened slot
	}

	slots, err := GenerateTimeSlots("09:00", "11:00", 30, nil, blackouts)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.True(t, slots[1].Unavailable)
	assert.False(t, slots[1].IsBookable())
	assert.False(t, slots[3].Unavailable, "blackout with IsUnavailable=false must not block the slot")
}

func TestGenerateTimeSlots_InvalidInput(t *testing.T) {
	_, err := GenerateTimeSlots("09:00", "18:00", 0, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidSlotStep)

	_, err = GenerateTimeSlots("9am", "18:00", 30, nil, nil)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestBookableOnly_IsOrderedSubset(t *testing.T) {
	reservations := []*Reservation{{StartTime: "10:00", Status: StatusActive}}
	blackouts := []*SlotBlackout{{StartTime: "11:30", IsUnavailable: true}}

	full, err := GenerateTimeSlots("09:00", "12:00", 30, reservations, blackouts)
	require.NoError(t, err)

	bookable := BookableOnly(full)
	require.Len(t, bookable, 4)

	// Bookable slots preserve the grid order and never include a
	// reserved or blacked-out time.
	idx := 0
	for _, s := range full {
		if idx < len(bookable) && bookable[idx].Time == s.Time {
			assert.True(t, s.IsBookable())
			idx++
		}
	}
	assert.Equal(t, len(bookable), idx, "bookable slots must appear in grid order")

	for _, s := range bookable {
		assert.NotEqual(t, types.TimeString("10:00"), s.Time)
		assert.NotEqual(t, types.TimeString("11:30"), s.Time)
	}
}

func TestApplyDayOverride_ForcesAllSlotsUnavailable(t *testing.T) {
	reservations := []*Reservation{{StartTime: "09:30", Status: StatusActive}}

	slots, err := GenerateTimeSlots("09:00", "10:30", 30, reservations, nil)
	require.NoError(t, err)

	closed := ApplyDayOverride(slots)
	require.Len(t, closed, len(slots))

	for i, s := range closed {
		assert.True(t, s.Unavailable)
		assert.False(t, s.Reserved, "day override hides reservation state")
		assert.Equal(t, slots[i].Time, s.Time)
		assert.Equal(t, slots[i].Formatted, s.Formatted)
	}

	assert.Empty(t, BookableOnly(closed))
}
