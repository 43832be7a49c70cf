package schedule

import (
	"slices"
	"time"
)

// Merge returns the minimal sorted list covering the same instants as slots.
// Overlapping and adjacent slots are combined. The input is not modified.
func Merge(slots []TimeSlot) []TimeSlot {
	if len(slots) == 0 {
		return []TimeSlot{}
	}

	sorted := slices.Clone(slots)
	slices.SortFunc(sorted, func(a, b TimeSlot) int {
		if c := a.start.Compare(b.start); c != 0 {
			return c
		}
		return a.end.Compare(b.end)
	})

	merged := make([]TimeSlot, 0, len(sorted))
	current := sorted[0]
	for _, next := range sorted[1:] {
		if !current.end.Before(next.start) {
			current = mustSlot(current.start, laterOf(current.end, next.end))
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Invert returns the free intervals of [windowStart, windowEnd) not covered by busy.
// busy must be sorted by start; overlaps between busy entries are tolerated.
func Invert(busy []TimeSlot, windowStart, windowEnd time.Time) []TimeSlot {
	if !windowStart.Before(windowEnd) {
		return []TimeSlot{}
	}

	free := make([]TimeSlot, 0, len(busy)+1)
	cursor := windowStart
	for _, b := range busy {
		if !b.end.After(cursor) {
			continue
		}
		if !b.start.Before(windowEnd) {
			break
		}
		if b.start.After(cursor) {
			free = append(free, mustSlot(cursor, b.start))
		}
		cursor = laterOf(cursor, b.end)
		if !cursor.Before(windowEnd) {
			return free
		}
	}
	return append(free, mustSlot(cursor, windowEnd))
}

// IntersectAll returns the instants contained in every one of the sorted free lists.
func IntersectAll(sets [][]TimeSlot) []TimeSlot {
	if len(sets) == 0 {
		return []TimeSlot{}
	}
	acc := sets[0]
	for _, set := range sets[1:] {
		if len(acc) == 0 {
			break
		}
		acc = intersect(acc, set)
	}
	return slices.Clone(acc)
}

func intersect(a, b []TimeSlot) []TimeSlot {
	out := make([]TimeSlot, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := laterOf(a[i].start, b[j].start)
		hi := earlierOf(a[i].end, b[j].end)
		if lo.Before(hi) {
			out = append(out, mustSlot(lo, hi))
		}
		if a[i].end.Before(b[j].end) {
			i++
		} else {
			j++
		}
	}
	return out
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
