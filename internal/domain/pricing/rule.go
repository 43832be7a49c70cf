package pricing

import (
	"slices"
	"time"

	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeRule is a priced condition attached to a Rate.
type ChargeRule struct {
	id            uuid.UUID
	unit          Unit
	chargeType    ChargeType
	amountPerUnit decimal.Decimal
	window        *ActiveWindow
	days          []time.Weekday
	minPlayers    int
	maxPlayers    int
}

type ChargeRuleParams struct {
	ID            uuid.UUID
	Unit          Unit
	ChargeType    ChargeType
	AmountPerUnit decimal.Decimal
	Window        *ActiveWindow
	Days          []time.Weekday
	MinPlayers    int
	MaxPlayers    int
}

func NewChargeRule(p ChargeRuleParams) (ChargeRule, error) {
	if !p.Unit.IsValid() {
		return ChargeRule{}, errs.Validation("unknown charge unit %q", p.Unit)
	}
	if !p.ChargeType.IsValid() {
		return ChargeRule{}, errs.Validation("unknown charge type %q", p.ChargeType)
	}
	if p.AmountPerUnit.IsNegative() {
		return ChargeRule{}, errs.Validation("amount per unit cannot be negative")
	}
	if p.MinPlayers < 1 {
		return ChargeRule{}, errs.Validation("min players must be at least 1, got %d", p.MinPlayers)
	}
	if p.MinPlayers > p.MaxPlayers {
		return ChargeRule{}, errs.Validation("min players %d exceeds max players %d", p.MinPlayers, p.MaxPlayers)
	}
	for _, d := range p.Days {
		if d < time.Sunday || d > time.Saturday {
			return ChargeRule{}, errs.Validation("invalid weekday %d", d)
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return ReconstructChargeRule(p), nil
}

// ReconstructChargeRule rebuilds a stored rule without validation. Enum values
// the engine does not know are kept so pricing can report them.
func ReconstructChargeRule(p ChargeRuleParams) ChargeRule {
	var window *ActiveWindow
	if p.Window != nil {
		w := *p.Window
		window = &w
	}
	return ChargeRule{
		id:            p.ID,
		unit:          p.Unit,
		chargeType:    p.ChargeType,
		amountPerUnit: p.AmountPerUnit,
		window:        window,
		days:          slices.Clone(p.Days),
		minPlayers:    p.MinPlayers,
		maxPlayers:    p.MaxPlayers,
	}
}

// IsApplicable reports whether the rule charges for the tick starting at instant
// with the given player count. Local time is taken in loc.
func (r ChargeRule) IsApplicable(instant time.Time, players int, loc *time.Location) bool {
	if players < r.minPlayers || players > r.maxPlayers {
		return false
	}
	local := instant.In(loc)
	if len(r.days) > 0 && !slices.Contains(r.days, local.Weekday()) {
		return false
	}
	if r.window == nil {
		return true
	}
	return r.window.Contains(TimeOfDayOf(local))
}

func (r ChargeRule) ID() uuid.UUID                  { return r.id }
func (r ChargeRule) Unit() Unit                     { return r.unit }
func (r ChargeRule) ChargeType() ChargeType         { return r.chargeType }
func (r ChargeRule) AmountPerUnit() decimal.Decimal { return r.amountPerUnit }
func (r ChargeRule) Days() []time.Weekday           { return slices.Clone(r.days) }
func (r ChargeRule) MinPlayers() int                { return r.minPlayers }
func (r ChargeRule) MaxPlayers() int                { return r.maxPlayers }

// Window returns the active window, or false when the rule applies all day.
func (r ChargeRule) Window() (ActiveWindow, bool) {
	if r.window == nil {
		return ActiveWindow{}, false
	}
	return *r.window, true
}

// Rate is a station's pricing policy: ordered charge rules within a rate card.
type Rate struct {
	ID         uuid.UUID
	RateCardID uuid.UUID
	Name       string
	Rules      []ChargeRule
}
