package queries

import (
	"context"
	"time"

	"club-booking/internal/domain/availability"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/domain/station"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type AvailabilityQueries interface {
	ByTime(ctx context.Context, clubID uuid.UUID, stationType string, slot schedule.TimeSlot) ([]StationAvailabilityView, error)
	StartTimes(ctx context.Context, stationIDs []uuid.UUID, duration time.Duration, window schedule.SearchWindow) ([]time.Time, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, clock: clk}
}

// ByTime checks every station of stationType in a club against one snapshot.
// A club without such stations yields an empty list.
func (q *availabilityQueriesImpl) ByTime(ctx context.Context, clubID uuid.UUID, stationType string, slot schedule.TimeSlot) ([]StationAvailabilityView, error) {
	ctx, span := tracer.Start(ctx, "AvailabilityQueries.ByTime")
	defer span.End()
	span.SetAttributes(
		attribute.String("club_id", clubID.String()),
		attribute.String("station_type", stationType),
	)

	if slot.IsZero() {
		return nil, errs.Validation("requested time range is required")
	}

	views := []StationAvailabilityView{}
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		stations, err := reads.Stations().FindByClubAndType(ctx, clubID, stationType)
		if err != nil {
			return err
		}
		if len(stations) == 0 {
			return nil
		}

		ids := stationIDs(stations)
		busy, err := reads.Busy().BusyIntervals(ctx, ids, slot, q.clock.Now())
		if err != nil {
			return err
		}

		result, err := availability.CheckByTime(ids, busy, slot)
		if err != nil {
			return err
		}
		for i, r := range result {
			views = append(views, StationAvailabilityView{
				StationID: r.StationID,
				Name:      stations[i].Name(),
				Available: r.Available,
			})
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return views, nil
}

func (q *availabilityQueriesImpl) StartTimes(ctx context.Context, ids []uuid.UUID, duration time.Duration, window schedule.SearchWindow) ([]time.Time, error) {
	ctx, span := tracer.Start(ctx, "AvailabilityQueries.StartTimes")
	defer span.End()
	span.SetAttributes(
		attribute.Int("station_count", len(ids)),
		attribute.String("duration", duration.String()),
		attribute.Int("span_hours", window.SpanHours()),
	)

	var starts []time.Time
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		if err := shared.EnsureStationsExist(ctx, reads, ids); err != nil {
			return err
		}

		busy, err := reads.Busy().BusyIntervals(ctx, ids, window.Slot(), q.clock.Now())
		if err != nil {
			return err
		}

		starts, err = availability.StartTimes(availability.StartTimeQuery{
			StationIDs: ids,
			Busy:       busy,
			Duration:   duration,
			Window:     window,
		})
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("start_count", len(starts)))
	return starts, nil
}

func stationIDs(stations []*station.Station) []uuid.UUID {
	ids := make([]uuid.UUID, len(stations))
	for i, s := range stations {
		ids[i] = s.ID()
	}
	return ids
}
