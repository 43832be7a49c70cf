package queries

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type PricingQueries interface {
	Quote(ctx context.Context, stations []booking.StationPlayers, slot schedule.TimeSlot) (*QuoteView, error)
}

type pricingQueriesImpl struct {
	uow     shared.UnitOfWork
	rates   shared.RateReader
	factory *booking.Factory
}

// NewPricingQueries prices unpersisted bookings. rates may be a cache in front of
// the unit of work; nil reads rates straight from storage.
func NewPricingQueries(uow shared.UnitOfWork, rates shared.RateReader, factory *booking.Factory) PricingQueries {
	if rates == nil {
		rates = uow.Reads().Rates()
	}
	return &pricingQueriesImpl{uow: uow, rates: rates, factory: factory}
}

func (q *pricingQueriesImpl) Quote(ctx context.Context, stations []booking.StationPlayers, slot schedule.TimeSlot) (*QuoteView, error) {
	ctx, span := tracer.Start(ctx, "PricingQueries.Quote")
	defer span.End()
	span.SetAttributes(
		attribute.Int("station_count", len(stations)),
		attribute.String("slot", slot.String()),
	)

	ids := make([]uuid.UUID, len(stations))
	for i, sp := range stations {
		ids[i] = sp.StationID
	}
	if err := shared.EnsureStationsExist(ctx, q.uow.Reads(), ids); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	rates, err := q.rates.RatesForStations(ctx, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	items, err := q.factory.Quote(stations, slot, rates)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &QuoteView{
		Items: ToAmountItemViews(items),
		Total: pricing.Total(items),
	}, nil
}
