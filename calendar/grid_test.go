package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestComputeGridDatesDay(t *testing.T) {
	ref := time.Date(2025, time.November, 21, 15, 30, 0, 0, time.Local)
	cells := ComputeGridDates(ref, ViewDay, time.Sunday)
	require.Len(t, cells, 1)
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.November, 21)))
	assert.True(t, cells[0].IsCurrentMonth)
}

func TestComputeGridDatesWeek(t *testing.T) {
	// 2025-11-21 is a Friday; the week must open on Sunday 2025-11-16.
	cells := ComputeGridDates(localDate(2025, time.November, 21), ViewWeek, time.Sunday)
	require.Len(t, cells, 7)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.November, 16)))
	for i := 1; i < 7; i++ {
		assert.True(t, cells[i].Date.Equal(cells[i-1].Date.AddDate(0, 0, 1)), "cells must be consecutive days")
	}
}

func TestComputeGridDatesWeekOnItsOwnStartDay(t *testing.T) {
	// A Sunday reference starts its own week.
	cells := ComputeGridDates(localDate(2025, time.November, 16), ViewWeek, time.Sunday)
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.November, 16)))
}

func TestComputeGridDatesWeekStartsMonday(t *testing.T) {
	cells := ComputeGridDates(localDate(2025, time.November, 21), ViewWeek, time.Monday)
	require.Len(t, cells, 7)
	assert.Equal(t, time.Monday, cells[0].Date.Weekday())
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.November, 17)))
}

func TestComputeGridDatesMonth(t *testing.T) {
	// November 2025 opens on a Saturday, so the grid leads with October days.
	cells := ComputeGridDates(localDate(2025, time.November, 21), ViewMonth, time.Sunday)
	require.Len(t, cells, 42)

	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.October, 26)))
	assert.False(t, cells[0].IsCurrentMonth)

	firstIdx := -1
	for i, c := range cells {
		if c.Date.Day() == 1 && c.Date.Month() == time.November {
			firstIdx = i
			break
		}
	}
	require.NotEqual(t, -1, firstIdx)
	assert.Equal(t, 6, firstIdx, "the 1st sits at its weekday offset, not at index 0")

	for i, c := range cells {
		want := c.Date.Month() == time.November && c.Date.Year() == 2025
		assert.Equal(t, want, c.IsCurrentMonth, "cell %d (%s)", i, c.Date)
	}
}

func TestComputeGridDatesMonthStartingOnWeekStart(t *testing.T) {
	// June 2025 opens on a Sunday: the 1st lands at grid index 0.
	cells := ComputeGridDates(localDate(2025, time.June, 10), ViewMonth, time.Sunday)
	require.Len(t, cells, 42)
	assert.True(t, cells[0].Date.Equal(localDate(2025, time.June, 1)))
	assert.True(t, cells[0].IsCurrentMonth)
}

func TestComputeGridDatesMonthAlwaysSixWeeks(t *testing.T) {
	// February 2026 fits in exactly 4 weeks but the grid stays 42 cells.
	cells := ComputeGridDates(localDate(2026, time.February, 15), ViewMonth, time.Sunday)
	assert.Len(t, cells, 42)
}

func TestNextPrevDate(t *testing.T) {
	ref := localDate(2025, time.March, 31)

	assert.True(t, NextDate(ref, ViewDay).Equal(localDate(2025, time.April, 1)))
	assert.True(t, PrevDate(ref, ViewDay).Equal(localDate(2025, time.March, 30)))

	assert.True(t, NextDate(ref, ViewWeek).Equal(localDate(2025, time.April, 7)))
	assert.True(t, PrevDate(ref, ViewWeek).Equal(localDate(2025, time.March, 24)))

	// Month navigation rolls over by calendar month, not by 30 days.
	assert.True(t, NextDate(localDate(2025, time.January, 15), ViewMonth).Equal(localDate(2025, time.February, 15)))
	assert.True(t, PrevDate(localDate(2025, time.January, 15), ViewMonth).Equal(localDate(2024, time.December, 15)))
}

func TestParseView(t *testing.T) {
	for _, s := range []string{"day", "week", "month"} {
		v, err := ParseView(s)
		require.NoError(t, err)
		assert.Equal(t, View(s), v)
	}
	_, err := ParseView("year")
	assert.Error(t, err)
}

func TestParseWeekStart(t *testing.T) {
	assert.Equal(t, time.Monday, ParseWeekStart("monday"))
	assert.Equal(t, time.Sunday, ParseWeekStart("sunday"))
	assert.Equal(t, time.Sunday, ParseWeekStart(""))
	assert.Equal(t, time.Sunday, ParseWeekStart("whenever"))
}

func TestParseDateRoundTrip(t *testing.T) {
	// A date string must survive parse/format unchanged in any local zone;
	// parsing "2025-01-01" as UTC would shift it to Dec 31 in zones ahead
	// of UTC.
	for _, s := range []string{"2025-01-01", "2024-02-29", "2025-12-31"} {
		d, err := ParseDate(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatDate(d))
	}
}

func TestParseDateMalformed(t *testing.T) {
	for _, s := range []string{"", "01/02/2025", "2025-13-01", "2025-02-30", "yesterday"} {
		_, err := ParseDate(s)
		require.Error(t, err, "input %q", s)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr, "input %q", s)
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, time.May, 5, 1, 0, 0, 0, time.Local)
	night := time.Date(2025, time.May, 5, 23, 59, 0, 0, time.Local)
	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(morning, morning.AddDate(0, 0, 1)))
	assert.False(t, SameDay(morning, morning.AddDate(1, 0, 0)))
}

func TestStartOfWeekTruncatesTime(t *testing.T) {
	ref := time.Date(2025, time.November, 19, 18, 45, 0, 0, time.Local)
	start := StartOfWeek(ref, time.Sunday)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, time.Sunday, start.Weekday())
}
