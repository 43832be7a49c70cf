package pricing

// Unit is what a charge rule's amountPerUnit is denominated in.
type Unit string

const (
	UnitPerHour       Unit = "PER_HOUR"
	UnitPerPlayerHour Unit = "PER_PLAYER_HOUR"
)

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitPerHour, UnitPerPlayerHour:
		return true
	default:
		return false
	}
}

// QuantityUnit is the unit the aggregated quantity of an amount item is counted in.
func (u Unit) QuantityUnit() string {
	switch u {
	case UnitPerHour:
		return "HOUR"
	case UnitPerPlayerHour:
		return "PLAYER_HOUR"
	default:
		return ""
	}
}

type ChargeType string

const (
	ChargeTypeBase  ChargeType = "BASE"
	ChargeTypeAddon ChargeType = "ADDON"
)

func (t ChargeType) String() string {
	return string(t)
}

func (t ChargeType) IsValid() bool {
	switch t {
	case ChargeTypeBase, ChargeTypeAddon:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryCharge   Category = "CHARGE"
	CategoryDiscount Category = "DISCOUNT"
)

func (c Category) String() string {
	return string(c)
}
