//go:build unit || e2e

package builder

import (
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// BaseTime is the reference "now" used across builders.
var BaseTime = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

type IntentBuilder struct {
	UserID   uuid.UUID
	Stations []booking.StationPlayers
	Start    time.Time
	End      time.Time
	Now      time.Time
	TTL      time.Duration
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{
		UserID:   uuid.New(),
		Stations: []booking.StationPlayers{{StationID: uuid.New(), Players: 2}},
		Start:    BaseTime.Add(2 * time.Hour),
		End:      BaseTime.Add(3 * time.Hour),
		Now:      BaseTime,
		TTL:      10 * time.Minute,
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

// Slot builds the time slot without booking validation.
func (b *IntentBuilder) Slot() schedule.TimeSlot {
	slot, err := schedule.NewTimeSlot(b.Start, b.End)
	if err != nil {
		return schedule.TimeSlot{}
	}
	return slot
}

func (b *IntentBuilder) BuildDomain() (*booking.Intent, error) {
	return booking.NewIntent(b.UserID, b.Stations, b.Slot(), b.Now, b.TTL)
}

// MustBuildDomain is BuildDomain for fixtures known to be valid.
func (b *IntentBuilder) MustBuildDomain() *booking.Intent {
	intent, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return intent
}

func (b *IntentBuilder) WithUserID(userID uuid.UUID) *IntentBuilder {
	b.UserID = userID
	return b
}

func (b *IntentBuilder) WithStations(stations ...booking.StationPlayers) *IntentBuilder {
	b.Stations = stations
	return b
}

func (b *IntentBuilder) WithTimes(start, end time.Time) *IntentBuilder {
	b.Start = start
	b.End = end
	return b
}
