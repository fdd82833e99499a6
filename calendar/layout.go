package calendar

import (
	"sort"

	"myday/model"
)

// EventWithLayout is an event plus its display position for day and week
// views: overlapping events get distinct columns, and TotalColumns is the
// width of the event's overlap cluster. It is recomputed on every render
// pass and never persisted.
type EventWithLayout struct {
	model.Event
	Column       int `json:"column"`
	TotalColumns int `json:"totalColumns"`
}

// LayoutDayEvents packs one day's events into side-by-side columns.
//
// Events are stably sorted by start time and greedily assigned to the first
// column free of conflicts, opening a new column when none fits. Column
// counts are then computed per connected overlap cluster, so disjoint
// events keep full width instead of being narrowed by unrelated conflicts
// elsewhere in the day.
func LayoutDayEvents(events []model.Event) ([]EventWithLayout, error) {
	if len(events) == 0 {
		return []EventWithLayout{}, nil
	}

	type item struct {
		event      model.Event
		start, end int
	}
	items := make([]item, len(events))
	for i, e := range events {
		start, end, err := eventInterval(e)
		if err != nil {
			return nil, err
		}
		items[i] = item{event: e, start: start, end: end}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].start < items[j].start
	})

	overlaps := func(i, j int) bool {
		return items[i].start < items[j].end && items[j].start < items[i].end
	}

	// Greedy first-fit column assignment.
	columnOf := make([]int, len(items))
	var columns [][]int // item indices per column
	for i := range items {
		assigned := false
		for c := range columns {
			conflict := false
			for _, j := range columns[c] {
				if overlaps(i, j) {
					conflict = true
					break
				}
			}
			if !conflict {
				columns[c] = append(columns[c], i)
				columnOf[i] = c
				assigned = true
				break
			}
		}
		if !assigned {
			columns = append(columns, []int{i})
			columnOf[i] = len(columns) - 1
		}
	}

	// Union overlapping events into clusters; the cluster's widest column
	// determines TotalColumns for every member.
	parent := make([]int, len(items))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if overlaps(i, j) {
				parent[find(i)] = find(j)
			}
		}
	}
	maxColumn := make(map[int]int)
	for i := range items {
		root := find(i)
		if columnOf[i] > maxColumn[root] {
			maxColumn[root] = columnOf[i]
		}
	}

	out := make([]EventWithLayout, len(items))
	for i, it := range items {
		out[i] = EventWithLayout{
			Event:        it.event,
			Column:       columnOf[i],
			TotalColumns: maxColumn[find(i)] + 1,
		}
	}
	return out, nil
}
