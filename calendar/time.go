// Package calendar implements the event layout and time arithmetic used by
// every agenda view: HH:MM parsing, interval overlap, side-by-side column
// packing, grid date calculation, event bucketing and the notification
// classifier. Everything here is pure and stateless; persistence and HTTP
// live elsewhere.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// defaultDurationMinutes is assumed when an event has no end time.
	defaultDurationMinutes = 60
	// minDurationMinutes is the smallest duration an event occupies for
	// display purposes, so zero or negative ranges never collapse a block.
	minDurationMinutes = 30
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidationError reports malformed input such as a bad time or date string.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseTimeToMinutes converts a 24-hour "HH:MM" string to minutes since
// midnight. Malformed input yields a ValidationError.
func ParseTimeToMinutes(s string) (int, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, &ValidationError{Field: "time", Message: fmt.Sprintf("%q is not a valid HH:MM time", s)}
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// MinutesToTime is the inverse of ParseTimeToMinutes.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EventDurationHours returns an event's duration in fractional hours.
// An empty end time means the default one-hour duration; a zero or negative
// range is clamped to half an hour so renderers never get a collapsed block.
func EventDurationHours(startTime, endTime string) (float64, error) {
	if endTime == "" {
		return 1.0, nil
	}
	start, err := ParseTimeToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseTimeToMinutes(endTime)
	if err != nil {
		return 0, err
	}
	d := end - start
	if d < minDurationMinutes {
		d = minDurationMinutes
	}
	return float64(d) / 60, nil
}

// EventStartOffsetHours returns the fractional-hour offset of the start time
// within its hour slot, e.g. "09:45" yields 0.75. Renderers scale it to
// position a block inside its row.
func EventStartOffsetHours(startTime string) (float64, error) {
	minutes, err := ParseTimeToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	return float64(minutes%60) / 60, nil
}
