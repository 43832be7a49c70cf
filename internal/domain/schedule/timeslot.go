package schedule

import (
	"fmt"
	"time"

	"club-booking/internal/pkg/errs"
)

const (
	// Tick is the unit bookings are aligned to and pricing walks in.
	Tick = 30 * time.Minute
	// Step is the distance between enumerated candidate start times.
	Step = 60 * time.Minute
)

// TimeSlot is an immutable half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errs.Validation("start time %s must be before end time %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeSlot{start: start, end: end}, nil
}

// NewBookableSlot is NewTimeSlot plus the booking invariants: both endpoints on
// the tick grid, so the duration is a positive multiple of Tick.
func NewBookableSlot(start, end time.Time) (TimeSlot, error) {
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return TimeSlot{}, err
	}
	if !IsTickAligned(start) || !IsTickAligned(end) {
		return TimeSlot{}, errs.Validation("time range %s is not aligned to %s ticks", slot, Tick)
	}
	return slot, nil
}

// mustSlot is for algebra results where start < end already holds.
func mustSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps reports whether the two slots share any instant. Adjacent slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// Contains reports whether other lies entirely inside ts.
func (ts TimeSlot) Contains(other TimeSlot) bool {
	return !other.start.Before(ts.start) && !other.end.After(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// Ticks returns the start instants of every tick in the slot.
func (ts TimeSlot) Ticks() []time.Time {
	var ticks []time.Time
	for curr := ts.start; curr.Before(ts.end); curr = curr.Add(Tick) {
		ticks = append(ticks, curr)
	}
	return ticks
}

func (ts TimeSlot) UTC() TimeSlot {
	return TimeSlot{start: ts.start.UTC(), end: ts.end.UTC()}
}

// String renders the slot in tstzrange notation.
func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

func IsTickAligned(t time.Time) bool {
	return t.Truncate(Tick).Equal(t)
}
