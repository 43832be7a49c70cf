package readstore

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.BookingRow, error)
	ListBookingStations(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.StationLineRow, error)
	ListBookingAmountItems(ctx context.Context, db query.DBTX, bookingID uuid.UUID) ([]query.AmountItemRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	stations, err := r.queries.ListBookingStations(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking stations", err)
	}
	itemRows, err := r.queries.ListBookingAmountItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking amount items", err)
	}

	items, err := toAmountItems(itemRows)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("booking total is malformed", err, infra.KindDBFailure)
	}
	slot, err := schedule.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, infra.WrapRepoErr("booking interval is malformed", err, infra.KindDBFailure)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.IntentID,
		row.UserID,
		toStationPlayers(stations),
		slot,
		booking.Status(row.Status),
		items,
		total,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func toStationPlayers(rows []query.StationLineRow) []booking.StationPlayers {
	result := make([]booking.StationPlayers, len(rows))
	for i, row := range rows {
		result[i] = booking.StationPlayers{StationID: row.StationID, Players: int(row.PlayerCount)}
	}
	return result
}

func toAmountItems(rows []query.AmountItemRow) ([]pricing.AmountItem, error) {
	items := make([]pricing.AmountItem, len(rows))
	for i, row := range rows {
		quantity, err := pgconv.DecimalFromNumeric(row.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("amount item quantity is malformed", err, infra.KindDBFailure)
		}
		ratePerUnit, err := pgconv.DecimalFromNumeric(row.RatePerUnit)
		if err != nil {
			return nil, infra.WrapRepoErr("amount item rate is malformed", err, infra.KindDBFailure)
		}
		amount, err := pgconv.DecimalFromNumeric(row.Amount)
		if err != nil {
			return nil, infra.WrapRepoErr("amount item amount is malformed", err, infra.KindDBFailure)
		}
		items[i] = pricing.AmountItem{
			Category:     pricing.Category(row.Category),
			Subcategory:  pricing.ChargeType(row.Subcategory),
			Quantity:     quantity,
			QuantityUnit: row.QuantityUnit,
			RatePerUnit:  ratePerUnit,
			RateUnit:     pricing.Unit(row.RateUnit),
			Amount:       amount,
		}
	}
	return items, nil
}
