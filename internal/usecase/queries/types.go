package queries

import (
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("club-booking/usecase/queries")

// StationAvailabilityView is one station's answer for a by-time query
type StationAvailabilityView struct {
	StationID uuid.UUID
	Name      string
	Available bool
}

type StationPlayersView struct {
	StationID uuid.UUID
	Players   int
}

type AmountItemView struct {
	Category     string
	Subcategory  string
	Quantity     decimal.Decimal
	QuantityUnit string
	RatePerUnit  decimal.Decimal
	RateUnit     string
	Amount       decimal.Decimal
}

type QuoteView struct {
	Items []AmountItemView
	Total decimal.Decimal
}

type BookingView struct {
	ID        uuid.UUID
	IntentID  uuid.UUID
	UserID    uuid.UUID
	Status    string
	StartTime time.Time
	EndTime   time.Time
	Stations  []StationPlayersView
	Items     []AmountItemView
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ToAmountItemViews(items []pricing.AmountItem) []AmountItemView {
	views := make([]AmountItemView, len(items))
	for i, item := range items {
		views[i] = AmountItemView{
			Category:     item.Category.String(),
			Subcategory:  item.Subcategory.String(),
			Quantity:     item.Quantity,
			QuantityUnit: item.QuantityUnit,
			RatePerUnit:  item.RatePerUnit,
			RateUnit:     item.RateUnit.String(),
			Amount:       item.Amount,
		}
	}
	return views
}

func ToStationPlayersViews(stations []booking.StationPlayers) []StationPlayersView {
	views := make([]StationPlayersView, len(stations))
	for i, sp := range stations {
		views[i] = StationPlayersView{StationID: sp.StationID, Players: sp.Players}
	}
	return views
}

func ToBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:        b.ID(),
		IntentID:  b.IntentID(),
		UserID:    b.UserID(),
		Status:    b.Status().String(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		Stations:  ToStationPlayersViews(b.Stations()),
		Items:     ToAmountItemViews(b.Items()),
		Total:     b.Total(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}
