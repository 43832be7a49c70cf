package booking

import (
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	IntentTTL       time.Duration
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator, intentTTL time.Duration) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
		IntentTTL:       intentTTL,
	}
}

func (f *Factory) CreateIntent(userID uuid.UUID, stations []StationPlayers, slot schedule.TimeSlot) (*Intent, error) {
	return NewIntent(userID, stations, slot, f.Clock.Now(), f.IntentTTL)
}

// Quote prices stations over slot without creating anything. rates is keyed by station id.
func (f *Factory) Quote(stations []StationPlayers, slot schedule.TimeSlot, rates map[uuid.UUID]*pricing.Rate) ([]pricing.AmountItem, error) {
	if err := validateStations(stations); err != nil {
		return nil, err
	}
	return f.PriceCalculator.Calculate(pricing.BookingContext{
		Slot:     slot,
		Stations: stations,
		Rates:    rates,
	})
}

// Confirm marks intent confirmed and prices it into a Booking.
func (f *Factory) Confirm(intent *Intent, rates map[uuid.UUID]*pricing.Rate) (*Booking, error) {
	now := f.Clock.Now()
	if err := intent.Confirm(now); err != nil {
		return nil, err
	}
	items, err := f.PriceCalculator.Calculate(pricing.BookingContext{
		Slot:     intent.TimeSlot(),
		Stations: intent.Stations(),
		Rates:    rates,
	})
	if err != nil {
		return nil, err
	}
	return newBooking(intent, items, now), nil
}
