package pricing

import (
	"fmt"
	"time"

	"club-booking/internal/pkg/errs"
)

const day = 24 * time.Hour

// TimeOfDay is an offset from local midnight, in [0, 24h).
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errs.Validation("invalid time of day %02d:%02d", hour, minute)
	}
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return 0, errs.Validation("invalid time of day %q", s)
}

// FromDuration maps a duration since midnight, as stored in a time column.
func FromDuration(d time.Duration) (TimeOfDay, error) {
	if d < 0 || d >= day {
		return 0, errs.Validation("time of day %s out of range", d)
	}
	return TimeOfDay(d), nil
}

// TimeOfDayOf returns the wall clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond()))
}

func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t)
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// ActiveWindow is a time-of-day range [Start, End). Start >= End wraps midnight.
type ActiveWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

func (w ActiveWindow) WrapsMidnight() bool {
	return w.Start >= w.End
}

func (w ActiveWindow) Contains(t TimeOfDay) bool {
	if w.WrapsMidnight() {
		return t >= w.Start || t < w.End
	}
	return t >= w.Start && t < w.End
}

func (w ActiveWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Start, w.End)
}
