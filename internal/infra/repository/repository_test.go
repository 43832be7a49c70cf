//go:build unit

package repository_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/domain/schedule"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/infra/repository"
	"club-booking/internal/pkg/pgconv"
	"club-booking/internal/usecase/shared"
	"club-booking/tests/common/builder"
	repositorymock "club-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

// =============================================================================
// IntentRepository
// =============================================================================

func TestIntentRepository_Create(t *testing.T) {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	intent := builder.NewIntentBuilder().
		WithStations(booking.StationPlayers{StationID: a, Players: 2}, booking.StationPlayers{StationID: b, Players: 3}).
		MustBuildDomain()

	t.Run("success: writes the intent then its stations in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIntentWriteQueries(ctrl)
		repo := repository.NewIntentRepository(mockQueries, &mockDBTX{})

		gomock.InOrder(
			mockQueries.EXPECT().CreateIntent(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateIntentParams) error {
					assert.Equal(t, intent.ID(), arg.ID)
					assert.Equal(t, intent.ExpiresAt(), arg.ExpiresAt.Time)
					return nil
				}),
			mockQueries.EXPECT().CreateIntentStation(ctx, gomock.Any(),
				query.StationLineParams{OwnerID: intent.ID(), StationID: a, Position: 0, PlayerCount: 2}).Return(nil),
			mockQueries.EXPECT().CreateIntentStation(ctx, gomock.Any(),
				query.StationLineParams{OwnerID: intent.ID(), StationID: b, Position: 1, PlayerCount: 3}).Return(nil),
		)

		require.NoError(t, repo.Create(ctx, intent))
	})

	t.Run("error: duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockIntentWriteQueries(ctrl)
		repo := repository.NewIntentRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CreateIntent(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		err := repo.Create(ctx, intent)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})
}

func TestIntentRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	id, userID, stationID := uuid.New(), uuid.New(), uuid.New()
	start := builder.At(2)

	row := query.IntentRow{
		ID:          id,
		UserID:      userID,
		StartTime:   pgconv.TimeToPgtype(start),
		EndTime:     pgconv.TimeToPgtype(start.Add(time.Hour)),
		ExpiresAt:   pgconv.TimeToPgtype(builder.At(0.5)),
		IsConfirmed: false,
		CreatedAt:   pgconv.TimeToPgtype(builder.BaseTime),
	}

	testCases := []struct {
		name       string
		setupMock  func(m *repositorymock.MockIntentWriteQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(m *repositorymock.MockIntentWriteQueries) {
				m.EXPECT().GetIntentForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				m.EXPECT().ListIntentStations(ctx, gomock.Any(), id).
					Return([]query.StationLineRow{{StationID: stationID, PlayerCount: 4}}, nil)
			},
		},
		{
			name: "error: not found",
			setupMock: func(m *repositorymock.MockIntentWriteQueries) {
				m.EXPECT().GetIntentForUpdate(ctx, gomock.Any(), id).Return(query.IntentRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: stations query fails",
			setupMock: func(m *repositorymock.MockIntentWriteQueries) {
				m.EXPECT().GetIntentForUpdate(ctx, gomock.Any(), id).Return(row, nil)
				m.EXPECT().ListIntentStations(ctx, gomock.Any(), id).Return(nil, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIntentWriteQueries(ctrl)
			repo := repository.NewIntentRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			intent, err := repo.FindForUpdate(ctx, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, intent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, intent.UserID())
			assert.Equal(t, []uuid.UUID{stationID}, intent.StationIDs())
			assert.Equal(t, time.Hour, intent.TimeSlot().Duration())
			assert.False(t, intent.IsConfirmed())
		})
	}
}

func TestIntentRepository_MarkConfirmed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		err        error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "error: already confirmed", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database error", err: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockIntentWriteQueries(ctrl)
			repo := repository.NewIntentRepository(mockQueries, &mockDBTX{})
			mockQueries.EXPECT().MarkIntentConfirmed(ctx, gomock.Any(), id).Return(tc.affected, tc.err)

			err := repo.MarkConfirmed(ctx, id)
			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIntentRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockIntentWriteQueries(ctrl)
	repo := repository.NewIntentRepository(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().DeleteExpiredIntents(ctx, gomock.Any(), pgconv.TimeToPgtype(builder.BaseTime)).Return(int64(2), nil)

	n, err := repo.DeleteExpired(ctx, builder.BaseTime)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// =============================================================================
// BookingRepository
// =============================================================================

func newConfirmedBooking(t *testing.T) *booking.Booking {
	t.Helper()
	slot, err := schedule.NewTimeSlot(builder.At(2), builder.At(3))
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(),
		[]booking.StationPlayers{{StationID: uuid.New(), Players: 2}},
		slot,
		booking.StatusConfirmed,
		[]pricing.AmountItem{
			{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeBase, Quantity: decimal.NewFromInt(1), RatePerUnit: decimal.NewFromInt(20), RateUnit: pricing.UnitPerHour, Amount: decimal.NewFromInt(20)},
			{Category: pricing.CategoryCharge, Subcategory: pricing.ChargeTypeAddon, Quantity: decimal.NewFromInt(2), RatePerUnit: decimal.NewFromInt(3), RateUnit: pricing.UnitPerPlayerHour, Amount: decimal.NewFromInt(6)},
		},
		decimal.NewFromInt(26),
		builder.BaseTime, builder.BaseTime,
	)
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	b := newConfirmedBooking(t)

	t.Run("success: writes booking, stations and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		var positions []int32
		mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.CreateBookingParams) error {
				assert.Equal(t, "confirmed", arg.Status)
				total, err := pgconv.DecimalFromNumeric(arg.TotalAmount)
				require.NoError(t, err)
				assert.True(t, decimal.NewFromInt(26).Equal(total))
				return nil
			})
		mockQueries.EXPECT().CreateBookingStation(ctx, gomock.Any(), gomock.Any()).Return(nil)
		mockQueries.EXPECT().CreateBookingAmountItem(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, arg query.AmountItemParams) error {
				positions = append(positions, arg.Position)
				return nil
			}).Times(2)

		require.NoError(t, repo.Create(ctx, b))
		assert.Equal(t, []int32{0, 1}, positions)
	})

	t.Run("error: foreign key violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CreateBooking(ctx, gomock.Any(), gomock.Any()).Return(nil)
		mockQueries.EXPECT().CreateBookingStation(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23503"})

		err := repo.Create(ctx, b)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	b := newConfirmedBooking(t)
	require.NoError(t, b.Cancel(builder.At(1)))

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), query.UpdateBookingStatusParams{
			ID:        b.ID(),
			Status:    "canceled",
			UpdatedAt: pgconv.TimeToPgtype(builder.At(1)),
		}).Return(int64(1), nil)

		require.NoError(t, repo.UpdateStatus(ctx, b))
	})

	t.Run("error: missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		repo := repository.NewBookingRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().UpdateBookingStatus(ctx, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := repo.UpdateStatus(ctx, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// NotificationRepository
// =============================================================================

func TestNotificationRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateJob carries the message key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CreateNotificationJob(ctx, gomock.Any(), query.CreateNotificationJobParams{
			Kind:       shared.NotificationKindBookingConfirmed,
			Topic:      shared.NotificationTopicBookings,
			MessageKey: "booking-1",
			Payload:    []byte(`{}`),
			RunAt:      pgconv.TimeToPgtype(builder.BaseTime),
		}).Return(nil)

		require.NoError(t, repo.CreateJob(ctx, shared.NotificationJob{
			Kind:    shared.NotificationKindBookingConfirmed,
			Topic:   shared.NotificationTopicBookings,
			Key:     "booking-1",
			Payload: []byte(`{}`),
			RunAt:   builder.BaseTime,
		}))
	})

	t.Run("ClaimDue maps rows to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries, &mockDBTX{})

		jobID := uuid.New()
		mockQueries.EXPECT().ClaimNotificationJobs(ctx, gomock.Any(), query.ClaimNotificationJobsParams{
			Now:   pgconv.TimeToPgtype(builder.BaseTime),
			Limit: 25,
		}).Return([]query.NotificationJobRow{{
			ID: jobID, Kind: "booking_canceled", Topic: "bookings", MessageKey: "k", Payload: []byte("p"),
			RunAt: pgconv.TimeToPgtype(builder.BaseTime),
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, builder.BaseTime, 25)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, "k", jobs[0].Key)
	})

	t.Run("MarkPublished skips an empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(mockQueries, &mockDBTX{})

		require.NoError(t, repo.MarkPublished(ctx, nil, builder.BaseTime))
	})
}

// =============================================================================
// StationLocker
// =============================================================================

func TestStationLocker_LockStations(t *testing.T) {
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	t.Run("locks each station once in id order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockStationLockQueries(ctrl)
		locker := repository.NewStationLocker(mockQueries, &mockDBTX{})

		var locked []uuid.UUID
		mockQueries.EXPECT().LockStation(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ query.DBTX, id uuid.UUID) error {
				locked = append(locked, id)
				return nil
			}).Times(3)

		require.NoError(t, locker.LockStations(ctx, []uuid.UUID{ids[2], ids[0], ids[1], ids[0]}))
		require.Len(t, locked, 3)
		for i := 1; i < len(locked); i++ {
			assert.Negative(t, bytes.Compare(locked[i-1][:], locked[i][:]))
		}
	})

	t.Run("error: lock fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockStationLockQueries(ctrl)
		locker := repository.NewStationLocker(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().LockStation(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "40P01"})

		err := locker.LockStations(ctx, ids[:1])
		assert.True(t, infra.IsKind(err, infra.KindConflict), "got %v", err)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use query mock instead.")
}
