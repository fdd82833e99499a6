package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myday/model"
)

func dayEvent(id string, day time.Time, startTime string) model.Event {
	return model.Event{
		EventID:   id,
		Title:     "event " + id,
		StartDate: day,
		EndDate:   day,
		StartTime: startTime,
	}
}

func TestEventsOnDate(t *testing.T) {
	monday := localDate(2025, time.November, 17)
	tuesday := localDate(2025, time.November, 18)
	events := []model.Event{
		dayEvent("a", monday, "09:00"),
		dayEvent("b", tuesday, "09:00"),
		dayEvent("c", monday, "14:00"),
	}

	got := EventsOnDate(events, monday)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].EventID)
	assert.Equal(t, "c", got[1].EventID)

	assert.Empty(t, EventsOnDate(events, localDate(2025, time.November, 19)))
	assert.Empty(t, EventsOnDate(nil, monday))
}

func TestEventsInHourSlot(t *testing.T) {
	day := localDate(2025, time.November, 17)
	events := []model.Event{
		dayEvent("a", day, "09:00"),
		dayEvent("b", day, "09:59"),
		dayEvent("c", day, "10:00"),
		dayEvent("other-day", day.AddDate(0, 0, 1), "09:30"),
	}

	nine := EventsInHourSlot(events, day, 9)
	require.Len(t, nine, 2)
	assert.Equal(t, "a", nine[0].EventID)
	assert.Equal(t, "b", nine[1].EventID)

	ten := EventsInHourSlot(events, day, 10)
	require.Len(t, ten, 1)
	assert.Equal(t, "c", ten[0].EventID)

	assert.Empty(t, EventsInHourSlot(events, day, 11))
}

func TestEventsInRange(t *testing.T) {
	base := localDate(2025, time.November, 16) // a Sunday
	events := []model.Event{
		dayEvent("before", base.AddDate(0, 0, -1), "09:00"),
		dayEvent("start", base, "09:00"),
		dayEvent("mid", base.AddDate(0, 0, 3), "09:00"),
		dayEvent("end", base.AddDate(0, 0, 6), "09:00"),
		dayEvent("after", base.AddDate(0, 0, 7), "09:00"),
	}

	got := EventsInRange(events, base, base.AddDate(0, 0, 6))
	require.Len(t, got, 3)
	assert.Equal(t, "start", got[0].EventID)
	assert.Equal(t, "mid", got[1].EventID)
	assert.Equal(t, "end", got[2].EventID)
}

func TestUpcomingEvents(t *testing.T) {
	today := localDate(2025, time.November, 21)
	events := []model.Event{
		dayEvent("past", today.AddDate(0, 0, -2), "09:00"),
		dayEvent("later-today", today, "18:00"),
		dayEvent("today", today, "08:00"),
		dayEvent("next-week", today.AddDate(0, 0, 5), "10:00"),
		dayEvent("tomorrow", today.AddDate(0, 0, 1), "10:00"),
	}

	got := UpcomingEvents(events, today, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "today", got[0].EventID)
	assert.Equal(t, "later-today", got[1].EventID)
	assert.Equal(t, "tomorrow", got[2].EventID)

	all := UpcomingEvents(events, today, 0)
	assert.Len(t, all, 4)
}

func TestSearchEvents(t *testing.T) {
	day := localDate(2025, time.November, 17)
	review := model.Event{
		EventID: "review", Title: "Sprint Review", Description: "demo for the team",
		Location: "Room 4", Participants: "Ana, Bruno",
		Type: "Meeting", Category: "Work", Priority: "high",
		StartDate: day, StartTime: "09:00",
	}
	dentist := model.Event{
		EventID: "dentist", Title: "Dentist", Description: "checkup",
		Type: "Appointment", Category: "Health", Priority: "medium",
		StartDate: day.AddDate(0, 0, 5), StartTime: "14:00",
	}
	events := []model.Event{review, dentist}

	tests := []struct {
		name    string
		filter  SearchFilter
		wantIDs []string
	}{
		{"no filter matches everything", SearchFilter{}, []string{"review", "dentist"}},
		{"term over title", SearchFilter{Term: "sprint"}, []string{"review"}},
		{"term over description", SearchFilter{Term: "CHECKUP"}, []string{"dentist"}},
		{"term over location", SearchFilter{Term: "room 4"}, []string{"review"}},
		{"term over participants", SearchFilter{Term: "bruno"}, []string{"review"}},
		{"term without match", SearchFilter{Term: "standup"}, nil},
		{"type filter", SearchFilter{Type: "Appointment"}, []string{"dentist"}},
		{"type all is a wildcard", SearchFilter{Type: "all"}, []string{"review", "dentist"}},
		{"category filter", SearchFilter{Category: "Work"}, []string{"review"}},
		{"priority filter", SearchFilter{Priority: "high"}, []string{"review"}},
		{"start date window", SearchFilter{StartDate: timePtr(day.AddDate(0, 0, 1))}, []string{"dentist"}},
		{"end date window", SearchFilter{EndDate: timePtr(day)}, []string{"review"}},
		{"combined", SearchFilter{Term: "dentist", Category: "Health"}, []string{"dentist"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchEvents(events, tt.filter)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.EventID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
