package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type BusyRow struct {
	StationID uuid.UUID
	OwnerID   uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

type ListBusyParams struct {
	StationIDs []pgtype.UUID
	From       pgtype.Timestamptz
	To         pgtype.Timestamptz
}

const listConfirmedBusy = `
SELECT bs.station_id, b.id, b.start_time, b.end_time
FROM bookings b
JOIN booking_stations bs ON bs.booking_id = b.id
WHERE bs.station_id = ANY($1::uuid[])
  AND b.status = 'confirmed'
  AND b.start_time < $3
  AND b.end_time > $2
ORDER BY bs.station_id, b.start_time
`

func (q *Queries) ListConfirmedBusy(ctx context.Context, db DBTX, arg ListBusyParams) ([]BusyRow, error) {
	rows, err := db.Query(ctx, listConfirmedBusy, arg.StationIDs, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBusy)
}

type ListPendingBusyParams struct {
	ListBusyParams
	Now pgtype.Timestamptz
}

const listPendingBusy = `
SELECT s.station_id, i.id, i.start_time, i.end_time
FROM booking_intents i
JOIN booking_intent_stations s ON s.intent_id = i.id
WHERE s.station_id = ANY($1::uuid[])
  AND i.is_confirmed = false
  AND i.expires_at > $4
  AND i.start_time < $3
  AND i.end_time > $2
ORDER BY s.station_id, i.start_time
`

func (q *Queries) ListPendingBusy(ctx context.Context, db DBTX, arg ListPendingBusyParams) ([]BusyRow, error) {
	rows, err := db.Query(ctx, listPendingBusy, arg.StationIDs, arg.From, arg.To, arg.Now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBusy)
}

func scanBusy(row pgx.CollectableRow) (BusyRow, error) {
	var b BusyRow
	err := row.Scan(&b.StationID, &b.OwnerID, &b.StartTime, &b.EndTime)
	return b, err
}

const lockStation = `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

// LockStation takes a transaction scoped advisory lock keyed by the station id.
func (q *Queries) LockStation(ctx context.Context, db DBTX, stationID uuid.UUID) error {
	_, err := db.Exec(ctx, lockStation, stationID.String())
	return err
}
