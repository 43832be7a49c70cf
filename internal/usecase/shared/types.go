package shared

import (
	"time"

	"github.com/google/uuid"
)

// NotificationJob is an outbox row relayed to Kafka. Key orders messages per booking.
type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}

const (
	NotificationKindBookingConfirmed = "booking_confirmed"
	NotificationKindBookingCanceled  = "booking_canceled"

	NotificationTopicBookings = "bookings"
)
