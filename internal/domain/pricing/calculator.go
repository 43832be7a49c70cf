package pricing

import (
	"log/slog"
	"time"

	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	two            = decimal.NewFromInt(2)
)

type StationPlayers struct {
	StationID uuid.UUID
	Players   int
}

// BookingContext is everything needed to price one booking. Rates is keyed by station id;
// a station missing from it contributes nothing.
type BookingContext struct {
	Slot     schedule.TimeSlot
	Stations []StationPlayers
	Rates    map[uuid.UUID]*Rate
}

type AmountItem struct {
	Category     Category
	Subcategory  ChargeType
	Quantity     decimal.Decimal
	QuantityUnit string
	RatePerUnit  decimal.Decimal
	RateUnit     Unit
	Amount       decimal.Decimal
}

// Total sums the amounts of items.
func Total(items []AmountItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// stage folds one category of items into the running breakdown.
type stage interface {
	apply(bc BookingContext, items []AmountItem) ([]AmountItem, error)
}

type Calculator struct {
	loc    *time.Location
	logger *slog.Logger
	stages []stage
}

func NewCalculator(loc *time.Location, logger *slog.Logger) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Calculator{loc: loc, logger: logger}
	c.stages = []stage{
		chargeStage{loc: loc, logger: logger},
		discountStage{},
	}
	return c
}

func (c *Calculator) Location() *time.Location {
	return c.loc
}

// Calculate walks the booking in ticks and returns one item per (category, subcategory)
// in order of first appearance.
func (c *Calculator) Calculate(bc BookingContext) ([]AmountItem, error) {
	if bc.Slot.IsZero() {
		return nil, errs.Validation("booking time range is required")
	}
	for _, sp := range bc.Stations {
		if sp.Players < 1 {
			return nil, errs.Validation("station %s needs at least one player, got %d", sp.StationID, sp.Players)
		}
	}

	items := []AmountItem{}
	for _, s := range c.stages {
		var err error
		items, err = s.apply(bc, items)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

type chargeStage struct {
	loc    *time.Location
	logger *slog.Logger
}

func (s chargeStage) apply(bc BookingContext, items []AmountItem) ([]AmountItem, error) {
	out := append([]AmountItem(nil), items...)
	index := make(map[ChargeType]int)

	end := bc.Slot.End()
	for curr := bc.Slot.Start(); curr.Before(end); curr = curr.Add(schedule.Tick) {
		tick := schedule.Tick
		if rest := end.Sub(curr); rest < tick {
			tick = rest
		}
		tickHours := decimal.NewFromFloat(tick.Minutes()).Div(minutesPerHour)

		for _, sp := range bc.Stations {
			rate := bc.Rates[sp.StationID]
			if rate == nil {
				continue
			}
			for _, rule := range rate.Rules {
				if !rule.IsApplicable(curr, sp.Players, s.loc) {
					continue
				}
				raw, err := rawQuantity(rule, tickHours, sp.Players)
				if err != nil {
					s.logger.Error("unresolved charge rule",
						"rate_id", rate.ID,
						"rule_id", rule.ID(),
						"unit", rule.Unit(),
						"charge_type", rule.ChargeType(),
						"min_players", rule.MinPlayers(),
						"max_players", rule.MaxPlayers(),
						"station_id", sp.StationID,
						"tick_start", curr)
					return nil, err
				}
				quantity := roundUpToHalf(raw)
				amount := quantity.Mul(rule.AmountPerUnit())

				if i, ok := index[rule.ChargeType()]; ok {
					out[i].Quantity = out[i].Quantity.Add(quantity)
					out[i].Amount = out[i].Amount.Add(amount)
					continue
				}
				index[rule.ChargeType()] = len(out)
				out = append(out, AmountItem{
					Category:     CategoryCharge,
					Subcategory:  rule.ChargeType(),
					Quantity:     quantity,
					QuantityUnit: rule.Unit().QuantityUnit(),
					RatePerUnit:  rule.AmountPerUnit(),
					RateUnit:     rule.Unit(),
					Amount:       amount,
				})
			}
		}
	}
	return out, nil
}

// rawQuantity dispatches on every known unit and charge type pair.
func rawQuantity(rule ChargeRule, tickHours decimal.Decimal, players int) (decimal.Decimal, error) {
	switch rule.Unit() {
	case UnitPerHour:
		switch rule.ChargeType() {
		case ChargeTypeBase, ChargeTypeAddon:
			return tickHours, nil
		}
	case UnitPerPlayerHour:
		switch rule.ChargeType() {
		case ChargeTypeBase:
			return tickHours.Mul(decimal.NewFromInt(int64(players))), nil
		case ChargeTypeAddon:
			// only players above the rule's floor are charged
			extra := players - rule.MinPlayers() + 1
			return tickHours.Mul(decimal.NewFromInt(int64(extra))), nil
		}
	}
	return decimal.Zero, errs.Mark(
		errs.Newf("charge rule %s has unit %q and charge type %q", rule.ID(), rule.Unit(), rule.ChargeType()),
		errs.ErrUnresolvedRule,
	)
}

func roundUpToHalf(q decimal.Decimal) decimal.Decimal {
	return q.Mul(two).Ceil().Div(two)
}

// discountStage is where discount rules will be applied; there are none yet.
type discountStage struct{}

func (discountStage) apply(_ BookingContext, items []AmountItem) ([]AmountItem, error) {
	return items, nil
}
