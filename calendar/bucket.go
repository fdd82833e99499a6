package calendar

import (
	"sort"
	"strings"
	"time"

	"myday/model"
)

// EventsOnDate filters events to those starting on the given calendar day.
// A multi-day event belongs to its start day only.
func EventsOnDate(events []model.Event, date time.Time) []model.Event {
	out := []model.Event{}
	for _, e := range events {
		if SameDay(e.StartDate, date) {
			out = append(out, e)
		}
	}
	return out
}

// EventsInHourSlot filters events to those starting within a specific hour
// of a day. Bucketing is by start hour only; a two-hour event lives in its
// start hour's row and spans visually from there.
func EventsInHourSlot(events []model.Event, date time.Time, hour int) []model.Event {
	out := []model.Event{}
	for _, e := range EventsOnDate(events, date) {
		minutes, err := ParseTimeToMinutes(e.StartTime)
		if err != nil {
			continue
		}
		if minutes/60 == hour {
			out = append(out, e)
		}
	}
	return out
}

// EventsInRange filters events whose start day falls within [start, end],
// inclusive on both ends. Used for the week counters on the dashboard.
func EventsInRange(events []model.Event, start, end time.Time) []model.Event {
	start = DayOf(start)
	end = DayOf(end)
	out := []model.Event{}
	for _, e := range events {
		day := DayOf(e.StartDate)
		if !day.Before(start) && !day.After(end) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingEvents returns events on or after the given day, ordered by start
// date then start time, truncated to limit (no truncation when limit <= 0).
func UpcomingEvents(events []model.Event, from time.Time, limit int) []model.Event {
	from = DayOf(from)
	out := []model.Event{}
	for _, e := range events {
		if !DayOf(e.StartDate).Before(from) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := DayOf(out[i].StartDate), DayOf(out[j].StartDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].StartTime < out[j].StartTime
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SearchFilter is the event search form: a free-text term matched against
// title, description, location and participants, exact classification
// filters ("all" or empty means any), and an optional start-date window.
type SearchFilter struct {
	Term      string
	Type      string
	Category  string
	Priority  string
	StartDate *time.Time
	EndDate   *time.Time
}

func filterMatchesAll(v string) bool {
	return v == "" || v == "all"
}

// SearchEvents applies a SearchFilter over the full collection.
func SearchEvents(events []model.Event, f SearchFilter) []model.Event {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	out := []model.Event{}
	for _, e := range events {
		if term != "" {
			match := strings.Contains(strings.ToLower(e.Title), term) ||
				strings.Contains(strings.ToLower(e.Description), term) ||
				strings.Contains(strings.ToLower(e.Location), term) ||
				strings.Contains(strings.ToLower(e.Participants), term)
			if !match {
				continue
			}
		}
		if !filterMatchesAll(f.Type) && e.Type != f.Type {
			continue
		}
		if !filterMatchesAll(f.Category) && e.Category != f.Category {
			continue
		}
		if !filterMatchesAll(f.Priority) && e.Priority != f.Priority {
			continue
		}
		if f.StartDate != nil && DayOf(e.StartDate).Before(DayOf(*f.StartDate)) {
			continue
		}
		if f.EndDate != nil && DayOf(e.StartDate).After(DayOf(*f.EndDate)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
