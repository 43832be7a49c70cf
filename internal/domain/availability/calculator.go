package availability

import (
	"slices"
	"time"

	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type StationAvailability struct {
	StationID uuid.UUID
	Available bool
}

// CheckByTime reports, per station, whether requested is entirely free.
// Results follow the order of stationIDs.
func CheckByTime(stationIDs []uuid.UUID, busy []BusyInterval, requested schedule.TimeSlot) ([]StationAvailability, error) {
	if len(stationIDs) == 0 {
		return nil, errs.Validation("at least one station is required")
	}
	if requested.IsZero() {
		return nil, errs.Validation("requested time range is required")
	}

	grouped := byStation(busy)
	out := make([]StationAvailability, 0, len(stationIDs))
	for _, id := range stationIDs {
		free := schedule.Invert(grouped[id], requested.Start(), requested.End())
		out = append(out, StationAvailability{
			StationID: id,
			Available: len(free) == 1 && free[0].Equal(requested),
		})
	}
	return out, nil
}

type StartTimeQuery struct {
	StationIDs []uuid.UUID
	Busy       []BusyInterval
	Duration   time.Duration
	Window     schedule.SearchWindow
}

func (q StartTimeQuery) validate() error {
	if len(q.StationIDs) == 0 {
		return errs.Validation("at least one station is required")
	}
	if q.Duration <= 0 || q.Duration%schedule.Tick != 0 {
		return errs.Validation("duration %s must be a positive multiple of %s", q.Duration, schedule.Tick)
	}
	if q.Window.SpanHours() <= 0 {
		return errs.Validation("search window is required")
	}
	return nil
}

// StartTimes enumerates every start time t, Step apart within each jointly free
// interval, such that [t, t+Duration) is free on all requested stations and t
// lies inside the search window. The result is ascending and duplicate free.
func StartTimes(q StartTimeQuery) ([]time.Time, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	anchor, windowEnd := q.Window.Anchor(), q.Window.End()
	if q.Duration > windowEnd.Sub(anchor) {
		return []time.Time{}, nil
	}

	grouped := byStation(q.Busy)
	freeSets := make([][]schedule.TimeSlot, 0, len(q.StationIDs))
	for _, id := range uniqueIDs(q.StationIDs) {
		freeSets = append(freeSets, schedule.Invert(grouped[id], anchor, windowEnd))
	}

	seen := make(map[int64]struct{})
	starts := make([]time.Time, 0)
	for _, iv := range schedule.IntersectAll(freeSets) {
		validEnd := iv.End().Add(-q.Duration)
		if validEnd.After(windowEnd) {
			validEnd = windowEnd
		}
		for t := iv.Start(); !t.After(validEnd); t = t.Add(schedule.Step) {
			if t.Before(anchor) {
				continue
			}
			key := t.UnixNano()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			starts = append(starts, t)
		}
	}

	slices.SortFunc(starts, func(a, b time.Time) int { return a.Compare(b) })
	return starts, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
