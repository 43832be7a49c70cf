package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"club-booking/internal/domain/availability"
	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/queries"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("club-booking/usecase/commands")

type CreateIntentRequest struct {
	Stations  []booking.StationPlayers
	StartTime time.Time
	EndTime   time.Time
}

type IntentResult struct {
	ID        uuid.UUID
	Stations  []queries.StationPlayersView
	StartTime time.Time
	EndTime   time.Time
	ExpiresAt time.Time
}

type BookingCommands interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest, userID uuid.UUID) (*IntentResult, error)
	ConfirmIntent(ctx context.Context, intentID uuid.UUID, userID uuid.UUID) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *booking.Factory
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, factory *booking.Factory, clk clock.Clock, logger *slog.Logger) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingUseCaseImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		logger:  logger,
	}
}

// CreateIntent holds the requested stations for the slot until the intent expires.
func (uc *bookingUseCaseImpl) CreateIntent(ctx context.Context, req CreateIntentRequest, userID uuid.UUID) (*IntentResult, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.CreateIntent")
	defer span.End()

	slot, err := schedule.NewBookableSlot(req.StartTime.UTC(), req.EndTime.UTC())
	if err != nil {
		return nil, recordErr(span, err)
	}
	intent, err := uc.factory.CreateIntent(userID, req.Stations, slot)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(
		attribute.String("intent_id", intent.ID().String()),
		attribute.String("slot", slot.String()),
	)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids := intent.StationIDs()
		if err := shared.EnsureStationsExist(ctx, tx.Reads(), ids); err != nil {
			return err
		}
		if err := tx.Locks().LockStations(ctx, ids); err != nil {
			return err
		}
		if err := uc.ensureFree(ctx, tx, ids, slot, uuid.Nil); err != nil {
			return err
		}
		return tx.Intents().Create(ctx, intent)
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	uc.logger.Info("booking intent created",
		"intent_id", intent.ID(),
		"user_id", userID,
		"slot", slot.String(),
		"expires_at", intent.ExpiresAt())

	return &IntentResult{
		ID:        intent.ID(),
		Stations:  queries.ToStationPlayersViews(intent.Stations()),
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		ExpiresAt: intent.ExpiresAt(),
	}, nil
}

// ConfirmIntent re-checks availability ignoring the intent's own hold, prices it
// and turns it into a booking in one transaction.
func (uc *bookingUseCaseImpl) ConfirmIntent(ctx context.Context, intentID uuid.UUID, userID uuid.UUID) (*queries.BookingView, error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.ConfirmIntent")
	defer span.End()
	span.SetAttributes(attribute.String("intent_id", intentID.String()))

	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		intent, err := tx.Intents().FindForUpdate(ctx, intentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrIntentNotFound)
			}
			return err
		}
		if intent.UserID() != userID {
			return errs.ErrForbidden
		}
		if intent.IsConfirmed() {
			return errs.ErrIntentAlreadyConfirmed
		}

		ids := intent.StationIDs()
		if err := tx.Locks().LockStations(ctx, ids); err != nil {
			return err
		}
		if err := uc.ensureFree(ctx, tx, ids, intent.TimeSlot(), intent.ID()); err != nil {
			return err
		}

		rates, err := tx.Reads().Rates().RatesForStations(ctx, ids)
		if err != nil {
			return err
		}
		b, err := uc.factory.Confirm(intent, rates)
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		if err := tx.Intents().MarkConfirmed(ctx, intent.ID()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrIntentAlreadyConfirmed)
			}
			return err
		}
		if err := enqueueBookingEvent(ctx, tx, shared.NotificationKindBookingConfirmed, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	uc.logger.Info("booking confirmed",
		"booking_id", created.ID(),
		"intent_id", intentID,
		"user_id", userID,
		"total", created.Total().String())

	return queries.ToBookingView(created), nil
}

// CancelBooking frees the booking's stations. Only the owner may cancel.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "BookingCommands.CancelBooking")
	defer span.End()
	span.SetAttributes(attribute.String("booking_id", bookingID.String()))

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().Bookings().FindByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}
		if !b.IsOwnedBy(userID) {
			return errs.ErrForbidden
		}
		if err := tx.Locks().LockStations(ctx, b.StationIDs()); err != nil {
			return err
		}
		if err := b.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b); err != nil {
			return err
		}
		return enqueueBookingEvent(ctx, tx, shared.NotificationKindBookingCanceled, b)
	})
	if err != nil {
		return recordErr(span, err)
	}

	uc.logger.Info("booking canceled", "booking_id", bookingID, "user_id", userID)
	return nil
}

// ensureFree fails with ErrSlotUnavailable unless slot is free on every station.
// Busy intervals owned by ignoreOwner are skipped.
func (uc *bookingUseCaseImpl) ensureFree(ctx context.Context, tx shared.Tx, ids []uuid.UUID, slot schedule.TimeSlot, ignoreOwner uuid.UUID) error {
	busy, err := tx.Reads().Busy().BusyIntervals(ctx, ids, slot, uc.clock.Now())
	if err != nil {
		return err
	}
	if ignoreOwner != uuid.Nil {
		busy = availability.Without(busy, ignoreOwner)
	}

	result, err := availability.CheckByTime(ids, busy, slot)
	if err != nil {
		return err
	}
	for _, r := range result {
		if !r.Available {
			return errs.Mark(errs.Newf("station %s is busy during %s", r.StationID, slot), errs.ErrSlotUnavailable)
		}
	}
	return nil
}

type bookingEvent struct {
	BookingID uuid.UUID       `json:"bookingId"`
	UserID    uuid.UUID       `json:"userId"`
	Status    string          `json:"status"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
	Stations  []uuid.UUID     `json:"stationIds"`
	Total     decimal.Decimal `json:"total"`
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, kind string, b *booking.Booking) error {
	payload, err := json.Marshal(bookingEvent{
		BookingID: b.ID(),
		UserID:    b.UserID(),
		Status:    b.Status().String(),
		StartTime: b.TimeSlot().Start(),
		EndTime:   b.TimeSlot().End(),
		Stations:  b.StationIDs(),
		Total:     b.Total(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}
	return tx.Notifications().CreateJob(ctx, shared.NotificationJob{
		Kind:    kind,
		Topic:   shared.NotificationTopicBookings,
		Key:     b.ID().String(),
		Payload: payload,
		RunAt:   b.UpdatedAt(),
	})
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
