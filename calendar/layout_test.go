package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myday/model"
)

func layoutByID(t *testing.T, events []model.Event) map[string]EventWithLayout {
	t.Helper()
	laid, err := LayoutDayEvents(events)
	require.NoError(t, err)
	out := make(map[string]EventWithLayout, len(laid))
	for _, l := range laid {
		out[l.EventID] = l
	}
	return out
}

func TestLayoutDayEventsEmpty(t *testing.T) {
	laid, err := LayoutDayEvents(nil)
	require.NoError(t, err)
	assert.Empty(t, laid)
}

func TestLayoutDayEventsSingle(t *testing.T) {
	laid, err := LayoutDayEvents([]model.Event{timedEvent("a", "09:00", "10:00")})
	require.NoError(t, err)
	require.Len(t, laid, 1)
	assert.Equal(t, 0, laid[0].Column)
	assert.Equal(t, 1, laid[0].TotalColumns)
}

func TestLayoutDayEventsClusterWidthIsLocal(t *testing.T) {
	// A and B overlap; C is unrelated and must keep full width.
	byID := layoutByID(t, []model.Event{
		timedEvent("a", "09:00", "10:00"),
		timedEvent("b", "09:30", "10:30"),
		timedEvent("c", "11:00", "12:00"),
	})

	assert.Equal(t, 0, byID["a"].Column)
	assert.Equal(t, 2, byID["a"].TotalColumns)
	assert.Equal(t, 1, byID["b"].Column)
	assert.Equal(t, 2, byID["b"].TotalColumns)
	assert.Equal(t, 0, byID["c"].Column)
	assert.Equal(t, 1, byID["c"].TotalColumns)
}

func TestLayoutDayEventsEndToEnd(t *testing.T) {
	byID := layoutByID(t, []model.Event{
		timedEvent("a", "09:00", "10:30"),
		timedEvent("b", "10:00", "11:00"),
		timedEvent("c", "14:00", "15:00"),
	})

	assert.Equal(t, 0, byID["a"].Column)
	assert.Equal(t, 1, byID["b"].Column)
	assert.Equal(t, 2, byID["a"].TotalColumns)
	assert.Equal(t, 2, byID["b"].TotalColumns)
	assert.Equal(t, 0, byID["c"].Column)
	assert.Equal(t, 1, byID["c"].TotalColumns)
}

func TestLayoutDayEventsDisjointShareColumnZero(t *testing.T) {
	byID := layoutByID(t, []model.Event{
		timedEvent("a", "08:00", "09:00"),
		timedEvent("b", "09:00", "10:00"),
		timedEvent("c", "10:00", "11:00"),
	})
	for id, l := range byID {
		assert.Equal(t, 0, l.Column, "event %s", id)
		assert.Equal(t, 1, l.TotalColumns, "event %s", id)
	}
}

func TestLayoutDayEventsOverlappingGetDistinctColumns(t *testing.T) {
	byID := layoutByID(t, []model.Event{
		timedEvent("a", "09:00", "11:00"),
		timedEvent("b", "09:30", "11:30"),
		timedEvent("c", "10:00", "12:00"),
	})
	seen := map[int]string{}
	for id, l := range byID {
		prev, dup := seen[l.Column]
		assert.False(t, dup, "events %s and %s share column %d", prev, id, l.Column)
		seen[l.Column] = id
		assert.Equal(t, 3, l.TotalColumns, "event %s", id)
	}
}

func TestLayoutDayEventsChainedClusterWidth(t *testing.T) {
	// B bridges A and C: the whole chain shares one cluster width even
	// though A and C never overlap directly. A and C may reuse column 0.
	byID := layoutByID(t, []model.Event{
		timedEvent("a", "09:00", "10:00"),
		timedEvent("b", "09:30", "10:30"),
		timedEvent("c", "10:00", "11:00"),
	})
	assert.Equal(t, 0, byID["a"].Column)
	assert.Equal(t, 1, byID["b"].Column)
	assert.Equal(t, 0, byID["c"].Column)
	for id, l := range byID {
		assert.Equal(t, 2, l.TotalColumns, "event %s", id)
	}
}

func TestLayoutDayEventsIdempotent(t *testing.T) {
	events := []model.Event{
		timedEvent("a", "09:00", "10:30"),
		timedEvent("b", "10:00", "11:00"),
		timedEvent("c", "09:15", ""),
		timedEvent("d", "14:00", "15:00"),
	}
	first, err := LayoutDayEvents(events)
	require.NoError(t, err)
	second, err := LayoutDayEvents(events)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLayoutDayEventsMalformedTime(t *testing.T) {
	_, err := LayoutDayEvents([]model.Event{timedEvent("a", "oops", "")})
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestLayoutDayEventsTieBreakIsInputOrder(t *testing.T) {
	// Same start time: the earlier input keeps the lower column.
	byID := layoutByID(t, []model.Event{
		timedEvent("first", "09:00", "10:00"),
		timedEvent("second", "09:00", "10:00"),
	})
	assert.Equal(t, 0, byID["first"].Column)
	assert.Equal(t, 1, byID["second"].Column)
}
