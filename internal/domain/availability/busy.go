package availability

import (
	"club-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// Source tells where a busy interval came from. The algebra treats both the same.
type Source string

const (
	SourceConfirmed Source = "confirmed"
	SourcePending   Source = "pending"
)

func (s Source) String() string {
	return string(s)
}

func (s Source) IsValid() bool {
	switch s {
	case SourceConfirmed, SourcePending:
		return true
	default:
		return false
	}
}

// BusyInterval is a station's slot taken by a confirmed booking or a live booking intent.
type BusyInterval struct {
	StationID uuid.UUID
	Slot      schedule.TimeSlot
	Source    Source
	// OwnerID is the booking or intent the interval belongs to.
	OwnerID uuid.UUID
}

func Confirmed(stationID, bookingID uuid.UUID, slot schedule.TimeSlot) BusyInterval {
	return BusyInterval{StationID: stationID, Slot: slot, Source: SourceConfirmed, OwnerID: bookingID}
}

func Pending(stationID, intentID uuid.UUID, slot schedule.TimeSlot) BusyInterval {
	return BusyInterval{StationID: stationID, Slot: slot, Source: SourcePending, OwnerID: intentID}
}

// Without drops intervals owned by ownerID, used when an intent re-checks its own hold.
func Without(busy []BusyInterval, ownerID uuid.UUID) []BusyInterval {
	out := make([]BusyInterval, 0, len(busy))
	for _, b := range busy {
		if b.OwnerID != ownerID {
			out = append(out, b)
		}
	}
	return out
}

// byStation groups busy slots per station, merged and sorted.
func byStation(busy []BusyInterval) map[uuid.UUID][]schedule.TimeSlot {
	grouped := make(map[uuid.UUID][]schedule.TimeSlot)
	for _, b := range busy {
		grouped[b.StationID] = append(grouped[b.StationID], b.Slot)
	}
	for id, slots := range grouped {
		grouped[id] = schedule.Merge(slots)
	}
	return grouped
}
