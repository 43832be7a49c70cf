package shared

import (
	"context"

	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// EnsureStationsExist fails with ErrStationNotFound when any id is unknown.
func EnsureStationsExist(ctx context.Context, reads Reads, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return errs.Validation("at least one station is required")
	}
	found, err := reads.Stations().FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, s := range found {
		known[s.ID()] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return errs.Mark(errs.Newf("station %s not found", id), errs.ErrStationNotFound)
		}
	}
	return nil
}
