package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" (24-hour) format.
// It is stored as-is in the database (VARCHAR) and compared by minutes since
// midnight, so "09:00" < "17:30" regardless of how the value was produced.
type TimeString string

const minutesPerDay = 24 * 60

// timePattern accepts an optional leading zero in the hour ("9:00" and "09:00").
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

var (
	// ErrInvalidTimeString is returned for values that are not "HH:MM".
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

	// ErrMinutesOutOfRange is returned when a minutes offset does not fit in a day.
	ErrMinutesOutOfRange = errors.New("types: minutes out of range [0, 1440)")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
// Seconds are truncated.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and normalizes s into a zero-padded TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || !timePattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// FromMinutes converts minutes since midnight into a zero-padded TimeString.
// Inverse of Minutes for every 0 <= m < 1440.
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate reports whether the value is a syntactically correct "HH:MM".
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" value.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the offset in minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil || !timePattern.MatchString(string(t)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by m minutes.
// The result must stay within the same day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	cur, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(cur + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare lexicographically as a last resort.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Format12Hour renders the value on a 12-hour clock with an AM/PM suffix:
// "00:30" -> "12:30 AM", "09:00" -> "9:00 AM", "12:05" -> "12:05 PM",
// "17:30" -> "5:30 PM".
func (t TimeString) Format12Hour() (string, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	h, m := total/60, total%60

	period := "AM"
	if h >= 12 {
		period = "PM"
	}

	display := h
	switch {
	case h == 0:
		display = 12
	case h > 12:
		display = h - 12
	}

	return fmt.Sprintf("%d:%02d %s", display, m, period), nil
}
