package queries

import (
	"context"

	"club-booking/internal/infra"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// GetByID returns a booking with its amount items. Only the owner may read it.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingQueries.GetByID")
	defer span.End()
	span.SetAttributes(attribute.String("booking_id", id.String()))

	b, err := q.uow.Reads().Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if !b.IsOwnedBy(actorID) {
		return nil, errs.ErrForbidden
	}
	return ToBookingView(b), nil
}
