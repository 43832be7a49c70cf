package request

import (
	"time"

	"club-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type AvailabilityByTimeQuery struct {
	StationType string    `form:"stationType" binding:"required"`
	Start       time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End         time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (q *AvailabilityByTimeQuery) ToDomain() (schedule.TimeSlot, error) {
	return schedule.NewBookableSlot(q.Start.UTC(), q.End.UTC())
}

type StartTimesRequest struct {
	StationIDs    []uuid.UUID `json:"stationIds" binding:"required,min=1,dive,required"`
	DurationHours int         `json:"durationHours" binding:"required,min=1,max=24"`
	Anchor        time.Time   `json:"anchor" binding:"required"`
	SpanHours     int         `json:"spanHours" binding:"required,min=1,max=168"`
}

func (r *StartTimesRequest) ToDomain() (time.Duration, schedule.SearchWindow, error) {
	window, err := schedule.NewSearchWindow(r.Anchor.UTC(), r.SpanHours)
	if err != nil {
		return 0, schedule.SearchWindow{}, err
	}
	return time.Duration(r.DurationHours) * time.Hour, window, nil
}
