package booking

import "club-booking/internal/domain/pricing"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// StationPlayers is one station of a booking with its player count.
type StationPlayers = pricing.StationPlayers

// PriceCalculator prices a booking context into amount items.
type PriceCalculator interface {
	Calculate(bc pricing.BookingContext) ([]pricing.AmountItem, error)
}
