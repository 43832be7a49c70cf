package repository

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db query.DBTX, arg query.CreateBookingParams) error
	CreateBookingStation(ctx context.Context, db query.DBTX, arg query.StationLineParams) error
	CreateBookingAmountItem(ctx context.Context, db query.DBTX, arg query.AmountItemParams) error
	UpdateBookingStatus(ctx context.Context, db query.DBTX, arg query.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      query.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db query.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the booking with its stations and amount items.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	params := query.CreateBookingParams{
		ID:          b.ID(),
		IntentID:    b.IntentID(),
		UserID:      b.UserID(),
		StartTime:   pgconv.TimeToPgtype(b.TimeSlot().Start()),
		EndTime:     pgconv.TimeToPgtype(b.TimeSlot().End()),
		Status:      b.Status().String(),
		TotalAmount: pgconv.DecimalToNumeric(b.Total()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
	if err := r.queries.CreateBooking(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	for i, sp := range b.Stations() {
		err := r.queries.CreateBookingStation(ctx, r.db, query.StationLineParams{
			OwnerID:     b.ID(),
			StationID:   sp.StationID,
			Position:    int32(i),
			PlayerCount: int32(sp.Players),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create booking station", err)
		}
	}

	for i, item := range b.Items() {
		err := r.queries.CreateBookingAmountItem(ctx, r.db, query.AmountItemParams{
			BookingID:    b.ID(),
			Position:     int32(i),
			Category:     item.Category.String(),
			Subcategory:  item.Subcategory.String(),
			Quantity:     pgconv.DecimalToNumeric(item.Quantity),
			QuantityUnit: item.QuantityUnit,
			RatePerUnit:  pgconv.DecimalToNumeric(item.RatePerUnit),
			RateUnit:     item.RateUnit.String(),
			Amount:       pgconv.DecimalToNumeric(item.Amount),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to create booking amount item", err)
		}
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, r.db, query.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
