package schedule

import (
	"time"

	"club-booking/internal/pkg/errs"
)

// SearchWindow bounds candidate start times to [anchor, anchor + spanHours).
type SearchWindow struct {
	anchor    time.Time
	spanHours int
}

func NewSearchWindow(anchor time.Time, spanHours int) (SearchWindow, error) {
	if spanHours <= 0 {
		return SearchWindow{}, errs.Validation("search window span must be positive, got %d hours", spanHours)
	}
	if !IsTickAligned(anchor) {
		return SearchWindow{}, errs.Validation("search window anchor %s is not aligned to %s ticks",
			anchor.Format(time.RFC3339), Tick)
	}
	return SearchWindow{anchor: anchor, spanHours: spanHours}, nil
}

func (w SearchWindow) Anchor() time.Time { return w.anchor }
func (w SearchWindow) SpanHours() int    { return w.spanHours }

func (w SearchWindow) End() time.Time {
	return w.anchor.Add(time.Duration(w.spanHours) * time.Hour)
}

func (w SearchWindow) Slot() TimeSlot {
	return mustSlot(w.anchor, w.End())
}
