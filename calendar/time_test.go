package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 0, true},
		{"09:60", 0, true},
		{"nine", 0, true},
		{"", 0, true},
		{"09:30:00", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.input)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.input)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:05", MinutesToTime(545))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestEventDurationHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"missing end defaults to one hour", "09:00", "", 1.0},
		{"ninety minutes", "09:00", "10:30", 1.5},
		{"full day", "00:00", "23:59", 1439.0 / 60},
		{"zero duration clamps to half hour", "09:00", "09:00", 0.5},
		{"negative duration clamps to half hour", "10:00", "09:00", 0.5},
		{"short event clamps to half hour", "09:00", "09:10", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EventDurationHours(tt.start, tt.end)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}

	_, err := EventDurationHours("bad", "10:00")
	assert.Error(t, err)
	_, err = EventDurationHours("09:00", "bad")
	assert.Error(t, err)
}

func TestEventStartOffsetHours(t *testing.T) {
	got, err := EventStartOffsetHours("09:45")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got, 1e-9)

	got, err = EventStartOffsetHours("14:00")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = EventStartOffsetHours("25:00")
	assert.Error(t, err)
}
