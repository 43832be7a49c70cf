//go:build unit || e2e

package builder

import (
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/station"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StationBuilder struct {
	ID     uuid.UUID
	ClubID uuid.UUID
	Type   string
	Name   string
	RateID *uuid.UUID
}

func NewStationBuilder() *StationBuilder {
	rateID := uuid.New()
	return &StationBuilder{
		ID:     uuid.New(),
		ClubID: uuid.New(),
		Type:   "padel",
		Name:   "Court 1",
		RateID: &rateID,
	}
}

func (b *StationBuilder) WithID(id uuid.UUID) *StationBuilder {
	b.ID = id
	return b
}

func (b *StationBuilder) WithClubID(id uuid.UUID) *StationBuilder {
	b.ClubID = id
	return b
}

func (b *StationBuilder) WithName(name string) *StationBuilder {
	b.Name = name
	return b
}

func (b *StationBuilder) WithoutRate() *StationBuilder {
	b.RateID = nil
	return b
}

func (b *StationBuilder) BuildDomain() *station.Station {
	return station.ReconstructStation(b.ID, b.ClubID, b.Type, b.Name, b.RateID, BaseTime, BaseTime)
}

// Stations builds one station per id, all in the same club.
func Stations(clubID uuid.UUID, ids ...uuid.UUID) []*station.Station {
	out := make([]*station.Station, len(ids))
	for i, id := range ids {
		out[i] = NewStationBuilder().WithID(id).WithClubID(clubID).BuildDomain()
	}
	return out
}

// HourlyRate is a rate with a single base rule charging amount per hour at any time.
func HourlyRate(amount string) *pricing.Rate {
	return &pricing.Rate{
		ID:   uuid.New(),
		Name: "Standard",
		Rules: []pricing.ChargeRule{
			pricing.ReconstructChargeRule(pricing.ChargeRuleParams{
				ID:            uuid.New(),
				Unit:          pricing.UnitPerHour,
				ChargeType:    pricing.ChargeTypeBase,
				AmountPerUnit: decimal.RequireFromString(amount),
				MinPlayers:    1,
				MaxPlayers:    8,
			}),
		},
	}
}

// RatesFor maps every id to the same hourly rate.
func RatesFor(amount string, ids ...uuid.UUID) map[uuid.UUID]*pricing.Rate {
	rate := HourlyRate(amount)
	rates := make(map[uuid.UUID]*pricing.Rate, len(ids))
	for _, id := range ids {
		rates[id] = rate
	}
	return rates
}

// At returns BaseTime shifted by the given hours.
func At(hours float64) time.Time {
	return BaseTime.Add(time.Duration(hours * float64(time.Hour)))
}
