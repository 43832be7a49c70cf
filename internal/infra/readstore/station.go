package readstore

import (
	"context"

	"club-booking/internal/domain/station"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StationReadQueries interface {
	ListStationsByClubAndType(ctx context.Context, db query.DBTX, clubID uuid.UUID, stationType string) ([]query.StationRow, error)
	ListStationsByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) ([]query.StationRow, error)
}

type StationReadStore struct {
	queries StationReadQueries
	db      query.DBTX
}

func NewStationReadStore(queries StationReadQueries, db query.DBTX) *StationReadStore {
	return &StationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StationReadStore) FindByClubAndType(ctx context.Context, clubID uuid.UUID, stationType string) ([]*station.Station, error) {
	rows, err := r.queries.ListStationsByClubAndType(ctx, r.db, clubID, stationType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stations by club and type", err)
	}
	return toStations(rows), nil
}

// FindByIDs returns the stations that exist, in the order of ids.
func (r *StationReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*station.Station, error) {
	rows, err := r.queries.ListStationsByIDs(ctx, r.db, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stations by ids", err)
	}

	byID := make(map[uuid.UUID]*station.Station, len(rows))
	for _, s := range toStations(rows) {
		byID[s.ID()] = s
	}
	result := make([]*station.Station, 0, len(rows))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func toStations(rows []query.StationRow) []*station.Station {
	result := make([]*station.Station, len(rows))
	for i, row := range rows {
		result[i] = station.ReconstructStation(
			row.ID,
			row.ClubID,
			row.StationType,
			row.Name,
			pgconv.UUIDPtrFromPgtype(row.RateID),
			pgconv.TimeFromPgtype(row.CreatedAt),
			pgconv.TimeFromPgtype(row.UpdatedAt),
		)
	}
	return result
}
