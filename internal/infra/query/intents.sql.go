package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateIntentParams struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
	ExpiresAt pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

const createIntent = `
INSERT INTO booking_intents (id, user_id, start_time, end_time, expires_at, is_confirmed, created_at)
VALUES ($1, $2, $3, $4, $5, false, $6)
`

func (q *Queries) CreateIntent(ctx context.Context, db DBTX, arg CreateIntentParams) error {
	_, err := db.Exec(ctx, createIntent, arg.ID, arg.UserID, arg.StartTime, arg.EndTime, arg.ExpiresAt, arg.CreatedAt)
	return err
}

type StationLineParams struct {
	OwnerID     uuid.UUID
	StationID   uuid.UUID
	Position    int32
	PlayerCount int32
}

const createIntentStation = `
INSERT INTO booking_intent_stations (intent_id, station_id, position, player_count)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) CreateIntentStation(ctx context.Context, db DBTX, arg StationLineParams) error {
	_, err := db.Exec(ctx, createIntentStation, arg.OwnerID, arg.StationID, arg.Position, arg.PlayerCount)
	return err
}

type IntentRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	StartTime   pgtype.Timestamptz
	EndTime     pgtype.Timestamptz
	ExpiresAt   pgtype.Timestamptz
	IsConfirmed bool
	CreatedAt   pgtype.Timestamptz
}

const getIntentForUpdate = `
SELECT id, user_id, start_time, end_time, expires_at, is_confirmed, created_at
FROM booking_intents
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetIntentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (IntentRow, error) {
	var i IntentRow
	err := db.QueryRow(ctx, getIntentForUpdate, id).Scan(
		&i.ID, &i.UserID, &i.StartTime, &i.EndTime, &i.ExpiresAt, &i.IsConfirmed, &i.CreatedAt,
	)
	return i, err
}

type StationLineRow struct {
	StationID   uuid.UUID
	PlayerCount int32
}

const listIntentStations = `
SELECT station_id, player_count
FROM booking_intent_stations
WHERE intent_id = $1
ORDER BY position
`

func (q *Queries) ListIntentStations(ctx context.Context, db DBTX, intentID uuid.UUID) ([]StationLineRow, error) {
	rows, err := db.Query(ctx, listIntentStations, intentID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanStationLine)
}

const markIntentConfirmed = `
UPDATE booking_intents SET is_confirmed = true
WHERE id = $1 AND is_confirmed = false
`

func (q *Queries) MarkIntentConfirmed(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, markIntentConfirmed, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteExpiredIntents = `
DELETE FROM booking_intents
WHERE is_confirmed = false AND expires_at <= $1
`

func (q *Queries) DeleteExpiredIntents(ctx context.Context, db DBTX, now pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, deleteExpiredIntents, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanStationLine(row pgx.CollectableRow) (StationLineRow, error) {
	var s StationLineRow
	err := row.Scan(&s.StationID, &s.PlayerCount)
	return s, err
}
