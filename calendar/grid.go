package calendar

import (
	"fmt"
	"time"
)

// View is the calendar granularity the grid is computed for.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView validates a view name coming off the wire.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return View(s), nil
	}
	return "", &ValidationError{Field: "view", Message: fmt.Sprintf("%q is not one of day, week, month", s)}
}

// GridCell is one date slot of a rendered calendar grid. IsCurrentMonth lets
// month views dim the leading and trailing days of adjacent months.
type GridCell struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
}

// monthGridCells is the fixed 6-row month grid, independent of how many
// weeks the month actually spans.
const monthGridCells = 42

// ComputeGridDates returns the cells to display for a reference date and
// view. Day view is the single reference date; week view is the 7 days from
// the most recent weekStart day on or before the reference; month view is a
// fixed 42-cell grid beginning on the weekStart day on or before the 1st.
func ComputeGridDates(ref time.Time, view View, weekStart time.Weekday) []GridCell {
	ref = DayOf(ref)
	switch view {
	case ViewDay:
		return []GridCell{{Date: ref, IsCurrentMonth: true}}
	case ViewWeek:
		start := StartOfWeek(ref, weekStart)
		cells := make([]GridCell, 7)
		for i := range cells {
			d := start.AddDate(0, 0, i)
			cells[i] = GridCell{Date: d, IsCurrentMonth: sameMonth(d, ref)}
		}
		return cells
	default:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		start := StartOfWeek(first, weekStart)
		cells := make([]GridCell, monthGridCells)
		for i := range cells {
			d := start.AddDate(0, 0, i)
			cells[i] = GridCell{Date: d, IsCurrentMonth: sameMonth(d, ref)}
		}
		return cells
	}
}

// NextDate advances the reference date by one step of the view: a day, a
// week, or a calendar month (with rollover, not a fixed day count).
func NextDate(ref time.Time, view View) time.Time {
	switch view {
	case ViewDay:
		return ref.AddDate(0, 0, 1)
	case ViewWeek:
		return ref.AddDate(0, 0, 7)
	default:
		return ref.AddDate(0, 1, 0)
	}
}

// PrevDate steps the reference date backwards by one view step.
func PrevDate(ref time.Time, view View) time.Time {
	switch view {
	case ViewDay:
		return ref.AddDate(0, 0, -1)
	case ViewWeek:
		return ref.AddDate(0, 0, -7)
	default:
		return ref.AddDate(0, -1, 0)
	}
}

// StartOfWeek returns the most recent weekStart day on or before d,
// truncated to midnight.
func StartOfWeek(d time.Time, weekStart time.Weekday) time.Time {
	d = DayOf(d)
	diff := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -diff)
}

// ParseWeekStart maps a "weekStartsOn" setting value to a weekday.
// Anything unrecognized falls back to Sunday, the application default.
func ParseWeekStart(s string) time.Weekday {
	if s == "monday" {
		return time.Monday
	}
	return time.Sunday
}

// DayOf truncates a time to midnight of its calendar day.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports calendar-day equality, ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ParseDate parses a wire-format "YYYY-MM-DD" date in local time. Parsing in
// local time keeps a date on its own calendar day regardless of the zone
// offset, which UTC parsing does not guarantee.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Message: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", s)}
	}
	return t, nil
}

// FormatDate renders a date in the wire format "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
