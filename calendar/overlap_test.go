package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"myday/model"
)

func timedEvent(id, startTime, endTime string) model.Event {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	return model.Event{
		EventID:   id,
		Title:     "event " + id,
		StartDate: day,
		EndDate:   day,
		StartTime: startTime,
		EndTime:   endTime,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Event
		want bool
	}{
		{"disjoint", timedEvent("a", "09:00", "10:00"), timedEvent("b", "11:00", "12:00"), false},
		{"back to back do not overlap", timedEvent("a", "09:00", "10:00"), timedEvent("b", "10:00", "11:00"), false},
		{"partial overlap", timedEvent("a", "09:00", "10:00"), timedEvent("b", "09:30", "10:30"), true},
		{"containment", timedEvent("a", "09:00", "12:00"), timedEvent("b", "10:00", "11:00"), true},
		{"identical", timedEvent("a", "09:00", "10:00"), timedEvent("b", "09:00", "10:00"), true},
		{"missing end implies one hour", timedEvent("a", "09:00", ""), timedEvent("b", "09:30", "10:30"), true},
		{"missing end stays half-open", timedEvent("a", "09:00", ""), timedEvent("b", "10:00", "11:00"), false},
		{"malformed time never overlaps", timedEvent("a", "junk", ""), timedEvent("b", "09:00", "10:00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}
