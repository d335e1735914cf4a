package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeString
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:00", want: "09:00"}, // leading zero optional on input
		{in: "00:00", want: "00:00"},
		{in: "23:59", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12:5", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NewTimeStringFromString(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	for m := 0; m < minutesPerDay; m += 7 {
		ts, err := FromMinutes(m)
		require.NoError(t, err)

		back, err := ts.Minutes()
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}

	_, err := FromMinutes(-1)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
	_, err = FromMinutes(minutesPerDay)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:45"), got)

	got, err = TimeString("17:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("18:00"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrMinutesOutOfRange, "shift past midnight must fail")
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:30"))
	assert.False(t, TimeString("17:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:30").IsAfter("09:00"))

	// Unpadded values still compare by minutes.
	assert.True(t, TimeString("9:05").IsBefore("10:00"))
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		in   TimeString
		want string
	}{
		{in: "00:30", want: "12:30 AM"}, // midnight hour shows as 12
		{in: "09:00", want: "9:00 AM"},
		{in: "11:59", want: "11:59 AM"},
		{in: "12:05", want: "12:05 PM"},
		{in: "13:00", want: "1:00 PM"},
		{in: "17:30", want: "5:30 PM"},
		{in: "23:45", want: "11:45 PM"},
	}

	for _, tt := range tests {
		got, err := tt.in.Format12Hour()
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("late").Format12Hour()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 1, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}
