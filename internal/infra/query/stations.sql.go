package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type StationRow struct {
	ID          uuid.UUID
	ClubID      uuid.UUID
	StationType string
	Name        string
	RateID      pgtype.UUID
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const listStationsByClubAndType = `
SELECT id, club_id, station_type, name, rate_id, created_at, updated_at
FROM stations
WHERE club_id = $1 AND station_type = $2
ORDER BY name, id
`

func (q *Queries) ListStationsByClubAndType(ctx context.Context, db DBTX, clubID uuid.UUID, stationType string) ([]StationRow, error) {
	rows, err := db.Query(ctx, listStationsByClubAndType, clubID, stationType)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStation)
}

const listStationsByIDs = `
SELECT id, club_id, station_type, name, rate_id, created_at, updated_at
FROM stations
WHERE id = ANY($1::uuid[])
`

func (q *Queries) ListStationsByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) ([]StationRow, error) {
	rows, err := db.Query(ctx, listStationsByIDs, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStation)
}

func scanStation(row pgx.CollectableRow) (StationRow, error) {
	var s StationRow
	err := row.Scan(&s.ID, &s.ClubID, &s.StationType, &s.Name, &s.RateID, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}
