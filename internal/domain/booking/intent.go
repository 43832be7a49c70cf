package booking

import (
	"slices"
	"time"

	"club-booking/internal/domain/schedule"
	"club-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Intent holds stations for a slot until it is confirmed or expires.
type Intent struct {
	id          uuid.UUID
	userID      uuid.UUID
	stations    []StationPlayers
	slot        schedule.TimeSlot
	expiresAt   time.Time
	isConfirmed bool
	createdAt   time.Time
}

func NewIntent(userID uuid.UUID, stations []StationPlayers, slot schedule.TimeSlot, now time.Time, ttl time.Duration) (*Intent, error) {
	if userID == uuid.Nil {
		return nil, errs.Validation("user id is required")
	}
	if err := validateStations(stations); err != nil {
		return nil, err
	}
	if err := validateSlot(slot, now); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, errs.Validation("intent ttl must be positive, got %s", ttl)
	}

	return &Intent{
		id:        uuid.New(),
		userID:    userID,
		stations:  slices.Clone(stations),
		slot:      slot,
		expiresAt: now.Add(ttl),
		createdAt: now,
	}, nil
}

func ReconstructIntent(
	id, userID uuid.UUID,
	stations []StationPlayers,
	slot schedule.TimeSlot,
	expiresAt time.Time,
	isConfirmed bool,
	createdAt time.Time,
) *Intent {
	return &Intent{
		id:          id,
		userID:      userID,
		stations:    stations,
		slot:        slot,
		expiresAt:   expiresAt,
		isConfirmed: isConfirmed,
		createdAt:   createdAt,
	}
}

// IsLive reports whether the intent still blocks its stations at now.
func (i *Intent) IsLive(now time.Time) bool {
	return !i.isConfirmed && now.Before(i.expiresAt)
}

func (i *Intent) HasExpired(now time.Time) bool {
	return !now.Before(i.expiresAt)
}

// Confirm flips the intent to confirmed. It is the only mutation an intent allows.
func (i *Intent) Confirm(now time.Time) error {
	if i.isConfirmed {
		return errs.ErrIntentAlreadyConfirmed
	}
	if i.HasExpired(now) {
		return errs.ErrIntentExpired
	}
	i.isConfirmed = true
	return nil
}

func (i *Intent) StationIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(i.stations))
	for n, sp := range i.stations {
		ids[n] = sp.StationID
	}
	return ids
}

func (i *Intent) ID() uuid.UUID               { return i.id }
func (i *Intent) UserID() uuid.UUID           { return i.userID }
func (i *Intent) Stations() []StationPlayers  { return slices.Clone(i.stations) }
func (i *Intent) TimeSlot() schedule.TimeSlot { return i.slot }
func (i *Intent) ExpiresAt() time.Time        { return i.expiresAt }
func (i *Intent) IsConfirmed() bool           { return i.isConfirmed }
func (i *Intent) CreatedAt() time.Time        { return i.createdAt }

func validateStations(stations []StationPlayers) error {
	if len(stations) == 0 {
		return errs.Validation("at least one station is required")
	}
	seen := make(map[uuid.UUID]struct{}, len(stations))
	for _, sp := range stations {
		if sp.StationID == uuid.Nil {
			return errs.Validation("station id is required")
		}
		if sp.Players < 1 {
			return errs.Validation("station %s needs at least one player, got %d", sp.StationID, sp.Players)
		}
		if _, dup := seen[sp.StationID]; dup {
			return errs.Validation("station %s is listed more than once", sp.StationID)
		}
		seen[sp.StationID] = struct{}{}
	}
	return nil
}

func validateSlot(slot schedule.TimeSlot, now time.Time) error {
	if slot.IsZero() {
		return errs.Validation("booking time range is required")
	}
	if !schedule.IsTickAligned(slot.Start()) || !schedule.IsTickAligned(slot.End()) {
		return errs.Validation("time range %s is not aligned to %s ticks", slot, schedule.Tick)
	}
	if slot.Start().Before(now) {
		return errs.Validation("start time %s is in the past", slot.Start().Format(time.RFC3339))
	}
	return nil
}
