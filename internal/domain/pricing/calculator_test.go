//go:build unit

package pricing_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalCmp = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func newCalculator() *pricing.Calculator {
	return pricing.NewCalculator(time.UTC, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func at(h, m int) time.Time {
	return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
}

func bookingSlot(t *testing.T, start, end time.Time) schedule.TimeSlot {
	t.Helper()
	s, err := schedule.NewTimeSlot(start, end)
	require.NoError(t, err)
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func rule(t *testing.T, p pricing.ChargeRuleParams) pricing.ChargeRule {
	t.Helper()
	if p.MaxPlayers == 0 {
		p.MaxPlayers = 8
	}
	if p.MinPlayers == 0 {
		p.MinPlayers = 1
	}
	r, err := pricing.NewChargeRule(p)
	require.NoError(t, err)
	return r
}

func rateOf(rules ...pricing.ChargeRule) *pricing.Rate {
	return &pricing.Rate{ID: uuid.New(), RateCardID: uuid.New(), Name: "standard", Rules: rules}
}

func assertItems(t *testing.T, expected, actual []pricing.AmountItem) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, decimalCmp); diff != "" {
		t.Errorf("Calculate() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_Calculate(t *testing.T) {
	stationA := uuid.New()
	stationB := uuid.New()

	hourly := rule(t, pricing.ChargeRuleParams{Unit: pricing.UnitPerHour, ChargeType: pricing.ChargeTypeBase, AmountPerUnit: dec("10")})
	perPlayer := rule(t, pricing.ChargeRuleParams{Unit: pricing.UnitPerPlayerHour, ChargeType: pricing.ChargeTypeBase, AmountPerUnit: dec("4")})
	extraPlayers := rule(t, pricing.ChargeRuleParams{Unit: pricing.UnitPerPlayerHour, ChargeType: pricing.ChargeTypeAddon, AmountPerUnit: dec("5"), MinPlayers: 2, MaxPlayers: 8})
	night := rule(t, pricing.ChargeRuleParams{
		Unit:          pricing.UnitPerHour,
		ChargeType:    pricing.ChargeTypeAddon,
		AmountPerUnit: dec("3"),
		Window:        &pricing.ActiveWindow{Start: tod(t, "22:00"), End: tod(t, "02:00")},
	})

	testCases := []struct {
		name     string
		ctx      pricing.BookingContext
		expected []pricing.AmountItem
	}{
		{
			name: "hourly base rate over two hours",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(10, 0), at(12, 0)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 2}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf(hourly)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("2"), QuantityUnit: "HOUR", RatePerUnit: dec("10"), RateUnit: pricing.UnitPerHour, Amount: dec("20")},
			},
		},
		{
			name: "addon charges only players from the rule floor",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(10, 0), at(10, 30)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 4}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf(extraPlayers)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeAddon, Quantity: dec("1.5"), QuantityUnit: "PLAYER_HOUR", RatePerUnit: dec("5"), RateUnit: pricing.UnitPerPlayerHour, Amount: dec("7.5")},
			},
		},
		{
			name: "partial tick rounds up to half a unit",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(10, 0), at(10, 40)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 1}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf(hourly)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("1"), QuantityUnit: "HOUR", RatePerUnit: dec("10"), RateUnit: pricing.UnitPerHour, Amount: dec("10")},
			},
		},
		{
			name: "per player base sums across stations",
			ctx: pricing.BookingContext{
				Slot: bookingSlot(t, at(10, 0), at(11, 0)),
				Stations: []pricing.StationPlayers{
					{StationID: stationA, Players: 2},
					{StationID: stationB, Players: 3},
				},
				Rates: map[uuid.UUID]*pricing.Rate{stationA: rateOf(perPlayer), stationB: rateOf(perPlayer)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("5"), QuantityUnit: "PLAYER_HOUR", RatePerUnit: dec("4"), RateUnit: pricing.UnitPerPlayerHour, Amount: dec("20")},
			},
		},
		{
			name: "night addon only in the wrapping window",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(21, 0), at(23, 0)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 1}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf(hourly, night)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("2"), QuantityUnit: "HOUR", RatePerUnit: dec("10"), RateUnit: pricing.UnitPerHour, Amount: dec("20")},
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeAddon, Quantity: dec("1"), QuantityUnit: "HOUR", RatePerUnit: dec("3"), RateUnit: pricing.UnitPerHour, Amount: dec("3")},
			},
		},
		{
			name: "groups follow first appearance",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(22, 0), at(23, 0)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 1}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf(night, hourly)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeAddon, Quantity: dec("1"), QuantityUnit: "HOUR", RatePerUnit: dec("3"), RateUnit: pricing.UnitPerHour, Amount: dec("3")},
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("1"), QuantityUnit: "HOUR", RatePerUnit: dec("10"), RateUnit: pricing.UnitPerHour, Amount: dec("10")},
			},
		},
		{
			name: "station without a rate contributes nothing",
			ctx: pricing.BookingContext{
				Slot: bookingSlot(t, at(10, 0), at(11, 0)),
				Stations: []pricing.StationPlayers{
					{StationID: stationA, Players: 1},
					{StationID: stationB, Players: 1},
				},
				Rates: map[uuid.UUID]*pricing.Rate{stationA: rateOf(hourly)},
			},
			expected: []pricing.AmountItem{
				{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: dec("1"), QuantityUnit: "HOUR", RatePerUnit: dec("10"), RateUnit: pricing.UnitPerHour, Amount: dec("10")},
			},
		},
		{
			name: "rate without rules yields no items",
			ctx: pricing.BookingContext{
				Slot:     bookingSlot(t, at(10, 0), at(11, 0)),
				Stations: []pricing.StationPlayers{{StationID: stationA, Players: 1}},
				Rates:    map[uuid.UUID]*pricing.Rate{stationA: rateOf()},
			},
			expected: []pricing.AmountItem{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := newCalculator().Calculate(tc.ctx)
			require.NoError(t, err)
			assertItems(t, tc.expected, items)
		})
	}
}

func TestCalculator_Deterministic(t *testing.T) {
	station := uuid.New()
	ctx := pricing.BookingContext{
		Slot:     bookingSlot(t, at(20, 0), at(23, 30)),
		Stations: []pricing.StationPlayers{{StationID: station, Players: 3}},
		Rates: map[uuid.UUID]*pricing.Rate{station: rateOf(
			rule(t, pricing.ChargeRuleParams{Unit: pricing.UnitPerPlayerHour, ChargeType: pricing.ChargeTypeBase, AmountPerUnit: dec("4.25")}),
			rule(t, pricing.ChargeRuleParams{
				Unit:          pricing.UnitPerHour,
				ChargeType:    pricing.ChargeTypeAddon,
				AmountPerUnit: dec("2.10"),
				Window:        &pricing.ActiveWindow{Start: tod(t, "22:00"), End: tod(t, "06:00")},
			}),
		)},
	}
	calc := newCalculator()

	first, err := calc.Calculate(ctx)
	require.NoError(t, err)
	for range 10 {
		again, err := calc.Calculate(ctx)
		require.NoError(t, err)
		assertItems(t, first, again)
	}
	assert.True(t, pricing.Total(first).Equal(dec("47.775")), "total was %s", pricing.Total(first))
}

func TestCalculator_UnresolvedRule(t *testing.T) {
	station := uuid.New()
	broken := pricing.ReconstructChargeRule(pricing.ChargeRuleParams{
		ID:            uuid.New(),
		Unit:          "PER_DAY",
		ChargeType:    pricing.ChargeTypeBase,
		AmountPerUnit: dec("1"),
		MinPlayers:    1,
		MaxPlayers:    4,
	})

	_, err := newCalculator().Calculate(pricing.BookingContext{
		Slot:     bookingSlot(t, at(10, 0), at(11, 0)),
		Stations: []pricing.StationPlayers{{StationID: station, Players: 1}},
		Rates:    map[uuid.UUID]*pricing.Rate{station: rateOf(broken)},
	})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnresolvedRule))
}

func TestCalculator_InvalidContext(t *testing.T) {
	station := uuid.New()
	calc := newCalculator()

	_, err := calc.Calculate(pricing.BookingContext{
		Stations: []pricing.StationPlayers{{StationID: station, Players: 1}},
	})
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = calc.Calculate(pricing.BookingContext{
		Slot:     bookingSlot(t, at(10, 0), at(11, 0)),
		Stations: []pricing.StationPlayers{{StationID: station, Players: 0}},
	})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
