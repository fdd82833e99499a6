package calendar

import "myday/model"

// eventInterval returns the half-open [start, end) minute interval an event
// occupies. A missing end time defaults to one hour after the start; an end
// at or before the start is clamped to the minimum displayable duration.
func eventInterval(e model.Event) (start, end int, err error) {
	start, err = ParseTimeToMinutes(e.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end = start + defaultDurationMinutes
	if e.EndTime != "" {
		end, err = ParseTimeToMinutes(e.EndTime)
		if err != nil {
			return 0, 0, err
		}
	}
	if end <= start {
		end = start + minDurationMinutes
	}
	return start, end, nil
}

// Overlaps reports whether the time intervals of two same-day events
// intersect. Intervals are half-open, so back-to-back events (one ending at
// 10:00, the next starting at 10:00) do not overlap. Events with malformed
// times never overlap anything; callers validate times at the form boundary.
func Overlaps(a, b model.Event) bool {
	aStart, aEnd, err := eventInterval(a)
	if err != nil {
		return false
	}
	bStart, bEnd, err := eventInterval(b)
	if err != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}
