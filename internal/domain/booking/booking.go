package booking

import (
	"slices"
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is a confirmed intent with its priced breakdown.
type Booking struct {
	id        uuid.UUID
	intentID  uuid.UUID
	userID    uuid.UUID
	stations  []StationPlayers
	slot      schedule.TimeSlot
	status    Status
	items     []pricing.AmountItem
	total     decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
}

func newBooking(intent *Intent, items []pricing.AmountItem, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		intentID:  intent.ID(),
		userID:    intent.UserID(),
		stations:  intent.Stations(),
		slot:      intent.TimeSlot(),
		status:    StatusConfirmed,
		items:     items,
		total:     pricing.Total(items),
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id, intentID, userID uuid.UUID,
	stations []StationPlayers,
	slot schedule.TimeSlot,
	status Status,
	items []pricing.AmountItem,
	total decimal.Decimal,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		intentID:  intentID,
		userID:    userID,
		stations:  stations,
		slot:      slot,
		status:    status,
		items:     items,
		total:     total,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCanceled {
		return errs.ErrBookingCanceled
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) StationIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(b.stations))
	for n, sp := range b.stations {
		ids[n] = sp.StationID
	}
	return ids
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) IntentID() uuid.UUID         { return b.intentID }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) Stations() []StationPlayers  { return slices.Clone(b.stations) }
func (b *Booking) TimeSlot() schedule.TimeSlot { return b.slot }
func (b *Booking) Status() Status              { return b.status }
func (b *Booking) Items() []pricing.AmountItem { return slices.Clone(b.items) }
func (b *Booking) Total() decimal.Decimal      { return b.total }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time        { return b.updatedAt }
