package repository

import (
	"context"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IntentWriteQueries interface {
	CreateIntent(ctx context.Context, db query.DBTX, arg query.CreateIntentParams) error
	CreateIntentStation(ctx context.Context, db query.DBTX, arg query.StationLineParams) error
	GetIntentForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.IntentRow, error)
	ListIntentStations(ctx context.Context, db query.DBTX, intentID uuid.UUID) ([]query.StationLineRow, error)
	MarkIntentConfirmed(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
	DeleteExpiredIntents(ctx context.Context, db query.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IntentRepository struct {
	queries IntentWriteQueries
	db      query.DBTX
}

func NewIntentRepository(queries IntentWriteQueries, db query.DBTX) *IntentRepository {
	return &IntentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IntentRepository) Create(ctx context.Context, intent *booking.Intent) error {
	params := query.CreateIntentParams{
		ID:        intent.ID(),
		UserID:    intent.UserID(),
		StartTime: pgconv.TimeToPgtype(intent.TimeSlot().Start()),
		EndTime:   pgconv.TimeToPgtype(intent.TimeSlot().End()),
		ExpiresAt: pgconv.TimeToPgtype(intent.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(intent.CreatedAt()),
	}
	if err := r.queries.CreateIntent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking intent", err)
	}

	for i, sp := range intent.Stations() {
		err := r.queries.CreateIntentStation(ctx, r.db, query.StationLineParams{
			OwnerID:     intent.ID(),
			StationID:   sp.StationID,
			Position:    int32(i),
			PlayerCount: int32(sp.Players),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create booking intent station", err)
		}
	}
	return nil
}

// FindForUpdate loads the intent and row-locks it until the transaction ends.
func (r *IntentRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Intent, error) {
	row, err := r.queries.GetIntentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking intent", err)
	}

	stations, err := r.queries.ListIntentStations(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking intent stations", err)
	}

	slot, err := schedule.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, infra.WrapRepoErr("booking intent interval is malformed", err, infra.KindDBFailure)
	}

	players := make([]booking.StationPlayers, len(stations))
	for i, s := range stations {
		players[i] = booking.StationPlayers{StationID: s.StationID, Players: int(s.PlayerCount)}
	}

	return booking.ReconstructIntent(
		row.ID,
		row.UserID,
		players,
		slot,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.IsConfirmed,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func (r *IntentRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.MarkIntentConfirmed(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to confirm booking intent", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking intent already confirmed", nil, infra.KindConflict)
	}
	return nil
}

func (r *IntentRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	deleted, err := r.queries.DeleteExpiredIntents(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired booking intents", err)
	}
	return deleted, nil
}
