//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"club-booking/internal/domain/availability"
	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/shared"
	"club-booking/tests/common/builder"
	"club-booking/tests/common/uowtest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	m     *uowtest.Mocks
	clock *clock.MockClock
	cmds  commands.BookingCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := uowtest.New(ctrl)
	clk := clock.NewMockClock(builder.BaseTime)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := booking.NewFactory(clk, pricing.NewCalculator(time.UTC, logger), 10*time.Minute)
	return &fixture{
		m:     m,
		clock: clk,
		cmds:  commands.NewBookingUseCase(m.UoW, factory, clk, logger),
	}
}

func mustSlot(t *testing.T, start, end time.Time) schedule.TimeSlot {
	t.Helper()
	slot, err := schedule.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

// =============================================================================
// CreateIntent
// =============================================================================

func TestBookingCommands_CreateIntent(t *testing.T) {
	ctx := context.Background()
	clubID := uuid.New()
	stationA, stationB := uuid.New(), uuid.New()
	userID := uuid.New()

	req := commands.CreateIntentRequest{
		Stations: []booking.StationPlayers{
			{StationID: stationA, Players: 2},
			{StationID: stationB, Players: 4},
		},
		StartTime: builder.At(2),
		EndTime:   builder.At(4),
	}

	t.Run("success: holds the stations until the intent expires", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.m.Stations.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{stationA, stationB}).
				Return(builder.Stations(clubID, stationA, stationB), nil),
			f.m.Locks.EXPECT().LockStations(gomock.Any(), []uuid.UUID{stationA, stationB}).Return(nil),
			f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), builder.BaseTime).
				Return([]availability.BusyInterval{
					// adjacent, does not block
					availability.Confirmed(stationA, uuid.New(), mustSlot(t, builder.At(4), builder.At(5))),
				}, nil),
			f.m.Intents.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, intent *booking.Intent) error {
					assert.Equal(t, userID, intent.UserID())
					assert.False(t, intent.IsConfirmed())
					return nil
				}),
		)

		result, err := f.cmds.CreateIntent(ctx, req, userID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ID)
		assert.Equal(t, builder.At(2), result.StartTime)
		assert.Equal(t, builder.At(4), result.EndTime)
		assert.Equal(t, builder.BaseTime.Add(10*time.Minute), result.ExpiresAt)
		require.Len(t, result.Stations, 2)
		assert.Equal(t, 4, result.Stations[1].Players)
	})

	t.Run("error: overlapping live intent makes the slot unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.m.Stations.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(builder.Stations(clubID, stationA, stationB), nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]availability.BusyInterval{
				availability.Pending(stationB, uuid.New(), mustSlot(t, builder.At(3.5), builder.At(5))),
			}, nil)
		f.m.Intents.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.CreateIntent(ctx, req, userID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable))
	})

	t.Run("error: unknown station", func(t *testing.T) {
		f := newFixture(t)
		f.m.Stations.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(builder.Stations(clubID, stationA), nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.CreateIntent(ctx, req, userID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStationNotFound))
	})

	t.Run("error: validation failures never open a transaction", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(r *commands.CreateIntentRequest)
		}{
			{"misaligned start", func(r *commands.CreateIntentRequest) { r.StartTime = builder.At(2).Add(10 * time.Minute) }},
			{"end before start", func(r *commands.CreateIntentRequest) { r.EndTime = builder.At(1) }},
			{"start in the past", func(r *commands.CreateIntentRequest) {
				r.StartTime = builder.At(-1)
			}},
			{"no players", func(r *commands.CreateIntentRequest) {
				r.Stations = []booking.StationPlayers{{StationID: stationA, Players: 0}}
			}},
			{"duplicate station", func(r *commands.CreateIntentRequest) {
				r.Stations = []booking.StationPlayers{{StationID: stationA, Players: 1}, {StationID: stationA, Players: 2}}
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				f.m.Stations.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Times(0)

				r := req
				r.Stations = append([]booking.StationPlayers(nil), req.Stations...)
				tc.mutate(&r)

				_, err := f.cmds.CreateIntent(ctx, r, userID)
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation), err.Error())
			})
		}
	})

	t.Run("error: storage failure is propagated", func(t *testing.T) {
		f := newFixture(t)
		f.m.Stations.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list stations", errs.New("connection reset")))

		_, err := f.cmds.CreateIntent(ctx, req, userID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable))
	})
}

// =============================================================================
// ConfirmIntent
// =============================================================================

func TestBookingCommands_ConfirmIntent(t *testing.T) {
	ctx := context.Background()
	stationID := uuid.New()
	userID := uuid.New()

	newIntent := func() *booking.Intent {
		return builder.NewIntentBuilder().
			WithUserID(userID).
			WithStations(booking.StationPlayers{StationID: stationID, Players: 2}).
			WithTimes(builder.At(2), builder.At(4)).
			MustBuildDomain()
	}

	t.Run("success: prices the intent and enqueues a confirmation event", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		f.clock.Advance(time.Minute)

		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), []uuid.UUID{stationID}).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), []uuid.UUID{stationID}, intent.TimeSlot(), gomock.Any()).
			Return([]availability.BusyInterval{
				// the intent's own hold is ignored
				availability.Pending(stationID, intent.ID(), intent.TimeSlot()),
			}, nil)
		f.m.Rates.EXPECT().RatesForStations(gomock.Any(), []uuid.UUID{stationID}).
			Return(builder.RatesFor("12.50", stationID), nil)
		f.m.Bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Intents.EXPECT().MarkConfirmed(gomock.Any(), intent.ID()).Return(nil)
		f.m.Notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job shared.NotificationJob) error {
				assert.Equal(t, shared.NotificationKindBookingConfirmed, job.Kind)
				assert.Equal(t, shared.NotificationTopicBookings, job.Topic)

				var payload map[string]any
				require.NoError(t, json.Unmarshal(job.Payload, &payload))
				assert.Equal(t, job.Key, payload["bookingId"])
				assert.Equal(t, "confirmed", payload["status"])
				return nil
			})

		view, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		require.NoError(t, err)
		assert.Equal(t, intent.ID(), view.IntentID)
		assert.Equal(t, "confirmed", view.Status)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "BASE", view.Items[0].Subcategory)
		assert.True(t, decimal.RequireFromString("25").Equal(view.Total), view.Total.String())
	})

	t.Run("error: intent not found", func(t *testing.T) {
		f := newFixture(t)
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking intent not found", errs.New("no rows"), infra.KindNotFound))

		_, err := f.cmds.ConfirmIntent(ctx, uuid.New(), userID)
		assert.True(t, errs.Is(err, errs.ErrIntentNotFound))
	})

	t.Run("error: another user's intent", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: already confirmed", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		require.NoError(t, intent.Confirm(builder.BaseTime))
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrIntentAlreadyConfirmed))
	})

	t.Run("error: expired intent", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		f.clock.Advance(11 * time.Minute)

		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.m.Rates.EXPECT().RatesForStations(gomock.Any(), gomock.Any()).Return(builder.RatesFor("10", stationID), nil)
		f.m.Bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrIntentExpired))
	})

	t.Run("error: slot taken by another booking", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]availability.BusyInterval{
				availability.Confirmed(stationID, uuid.New(), mustSlot(t, builder.At(3), builder.At(4))),
			}, nil)
		f.m.Rates.EXPECT().RatesForStations(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrSlotUnavailable))
	})

	t.Run("error: concurrent confirmation loses the race", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.m.Rates.EXPECT().RatesForStations(gomock.Any(), gomock.Any()).Return(builder.RatesFor("10", stationID), nil)
		f.m.Bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Intents.EXPECT().MarkConfirmed(gomock.Any(), intent.ID()).
			Return(infra.WrapRepoErr("booking intent already confirmed", nil, infra.KindConflict))
		f.m.Notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrIntentAlreadyConfirmed))
	})

	t.Run("error: unresolved charge rule aborts the confirmation", func(t *testing.T) {
		f := newFixture(t)
		intent := newIntent()
		broken := &pricing.Rate{ID: uuid.New(), Rules: []pricing.ChargeRule{
			pricing.ReconstructChargeRule(pricing.ChargeRuleParams{
				ID:            uuid.New(),
				Unit:          pricing.Unit("PER_SESSION"),
				ChargeType:    pricing.ChargeTypeBase,
				AmountPerUnit: decimal.NewFromInt(5),
				MinPlayers:    1,
				MaxPlayers:    8,
			}),
		}}
		f.m.Intents.EXPECT().FindForUpdate(gomock.Any(), intent.ID()).Return(intent, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Busy.EXPECT().BusyIntervals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.m.Rates.EXPECT().RatesForStations(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*pricing.Rate{stationID: broken}, nil)
		f.m.Bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.cmds.ConfirmIntent(ctx, intent.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrUnresolvedRule))
	})
}

// =============================================================================
// CancelBooking
// =============================================================================

func TestBookingCommands_CancelBooking(t *testing.T) {
	ctx := context.Background()
	stationID := uuid.New()
	userID := uuid.New()

	newBooking := func(status booking.Status) *booking.Booking {
		return booking.ReconstructBooking(
			uuid.New(), uuid.New(), userID,
			[]booking.StationPlayers{{StationID: stationID, Players: 2}},
			mustSlot(t, builder.At(2), builder.At(3)),
			status,
			nil,
			decimal.NewFromInt(10),
			builder.BaseTime, builder.BaseTime,
		)
	}

	t.Run("success: cancels and enqueues a cancellation event", func(t *testing.T) {
		f := newFixture(t)
		b := newBooking(booking.StatusConfirmed)
		f.clock.Advance(30 * time.Minute)

		f.m.BookingReads.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), []uuid.UUID{stationID}).Return(nil)
		f.m.Bookings.EXPECT().UpdateStatus(gomock.Any(), b).
			DoAndReturn(func(_ context.Context, got *booking.Booking) error {
				assert.Equal(t, booking.StatusCanceled, got.Status())
				assert.Equal(t, builder.BaseTime.Add(30*time.Minute), got.UpdatedAt())
				return nil
			})
		f.m.Notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, job shared.NotificationJob) error {
				assert.Equal(t, shared.NotificationKindBookingCanceled, job.Kind)
				assert.Equal(t, b.ID().String(), job.Key)
				return nil
			})

		require.NoError(t, f.cmds.CancelBooking(ctx, b.ID(), userID))
	})

	t.Run("error: booking not found", func(t *testing.T) {
		f := newFixture(t)
		f.m.BookingReads.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", errs.New("no rows"), infra.KindNotFound))

		err := f.cmds.CancelBooking(ctx, uuid.New(), userID)
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})

	t.Run("error: not the owner", func(t *testing.T) {
		f := newFixture(t)
		b := newBooking(booking.StatusConfirmed)
		f.m.BookingReads.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		f.m.Bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)

		err := f.cmds.CancelBooking(ctx, b.ID(), uuid.New())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: already canceled", func(t *testing.T) {
		f := newFixture(t)
		b := newBooking(booking.StatusCanceled)
		f.m.BookingReads.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		f.m.Locks.EXPECT().LockStations(gomock.Any(), gomock.Any()).Return(nil)
		f.m.Bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)

		err := f.cmds.CancelBooking(ctx, b.ID(), userID)
		assert.True(t, errs.Is(err, errs.ErrBookingCanceled))
	})
}
