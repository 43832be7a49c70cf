package repository

import (
	"bytes"
	"context"
	"slices"

	"club-booking/internal/infra"
	"club-booking/internal/infra/query"

	"github.com/google/uuid"
)

type StationLockQueries interface {
	LockStation(ctx context.Context, db query.DBTX, stationID uuid.UUID) error
}

// StationLocker serializes writers touching the same stations within a transaction.
type StationLocker struct {
	queries StationLockQueries
	db      query.DBTX
}

func NewStationLocker(queries StationLockQueries, db query.DBTX) *StationLocker {
	return &StationLocker{
		queries: queries,
		db:      db,
	}
}

// LockStations takes the locks in id order so concurrent callers cannot deadlock.
func (l *StationLocker) LockStations(ctx context.Context, stationIDs []uuid.UUID) error {
	ids := slices.Clone(stationIDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	for _, id := range ids {
		if err := l.queries.LockStation(ctx, l.db, id); err != nil {
			return infra.WrapRepoErr("failed to lock station", err)
		}
	}
	return nil
}
