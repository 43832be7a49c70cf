package shared

import (
	"context"
	"time"

	"club-booking/internal/domain/availability"
	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/domain/station"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
	// Reads: Single query reads on the pool using implicit transactions
	Reads() Reads
}

type Tx interface {
	Intents() IntentRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Locks() StationLocker
	Reads() Reads
}

type Reads interface {
	Stations() StationReader
	Busy() BusyIntervalReader
	Rates() RateReader
	Bookings() BookingReader
}

type StationReader interface {
	FindByClubAndType(ctx context.Context, clubID uuid.UUID, stationType string) ([]*station.Station, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*station.Station, error)
}

// BusyIntervalReader returns confirmed bookings plus intents still live at now.
type BusyIntervalReader interface {
	BusyIntervals(ctx context.Context, stationIDs []uuid.UUID, window schedule.TimeSlot, now time.Time) ([]availability.BusyInterval, error)
}

type RateReader interface {
	RatesForStations(ctx context.Context, stationIDs []uuid.UUID) (map[uuid.UUID]*pricing.Rate, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type IntentRepository interface {
	Create(ctx context.Context, intent *booking.Intent) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*booking.Intent, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NotificationJob) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

type StationLocker interface {
	LockStations(ctx context.Context, stationIDs []uuid.UUID) error
}
