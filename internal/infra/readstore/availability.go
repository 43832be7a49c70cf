package readstore

import (
	"context"
	"time"

	"club-booking/internal/domain/availability"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AvailabilityReadQueries interface {
	ListConfirmedBusy(ctx context.Context, db query.DBTX, arg query.ListBusyParams) ([]query.BusyRow, error)
	ListPendingBusy(ctx context.Context, db query.DBTX, arg query.ListPendingBusyParams) ([]query.BusyRow, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      query.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db query.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// BusyIntervals returns confirmed bookings and intents live at now that overlap window.
func (r *AvailabilityReadStore) BusyIntervals(ctx context.Context, stationIDs []uuid.UUID, window schedule.TimeSlot, now time.Time) ([]availability.BusyInterval, error) {
	if len(stationIDs) == 0 {
		return []availability.BusyInterval{}, nil
	}

	params := query.ListBusyParams{
		StationIDs: pgconv.UUIDsToPgtype(stationIDs),
		From:       pgconv.TimeToPgtype(window.Start()),
		To:         pgconv.TimeToPgtype(window.End()),
	}

	confirmed, err := r.queries.ListConfirmedBusy(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}
	pending, err := r.queries.ListPendingBusy(ctx, r.db, query.ListPendingBusyParams{
		ListBusyParams: params,
		Now:            pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending intents", err)
	}

	busy := make([]availability.BusyInterval, 0, len(confirmed)+len(pending))
	for _, row := range confirmed {
		slot, err := rowSlot(row)
		if err != nil {
			return nil, err
		}
		busy = append(busy, availability.Confirmed(row.StationID, row.OwnerID, slot))
	}
	for _, row := range pending {
		slot, err := rowSlot(row)
		if err != nil {
			return nil, err
		}
		busy = append(busy, availability.Pending(row.StationID, row.OwnerID, slot))
	}
	return busy, nil
}

func rowSlot(row query.BusyRow) (schedule.TimeSlot, error) {
	slot, err := schedule.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return schedule.TimeSlot{}, infra.WrapRepoErr("stored interval is malformed", err, infra.KindDBFailure)
	}
	return slot, nil
}
