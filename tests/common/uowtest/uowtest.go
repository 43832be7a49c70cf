//go:build unit

package uowtest

import (
	"context"

	"club-booking/internal/usecase/shared"
	sharedmock "club-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Mocks wires a mocked unit of work whose transactions run fn against the
// contained repository and reader mocks.
type Mocks struct {
	UoW           *sharedmock.MockUnitOfWork
	Tx            *sharedmock.MockTx
	Reads         *sharedmock.MockReads
	Stations      *sharedmock.MockStationReader
	Busy          *sharedmock.MockBusyIntervalReader
	Rates         *sharedmock.MockRateReader
	BookingReads  *sharedmock.MockBookingReader
	Intents       *sharedmock.MockIntentRepository
	Bookings      *sharedmock.MockBookingRepository
	Notifications *sharedmock.MockNotificationRepository
	Locks         *sharedmock.MockStationLocker
}

func New(ctrl *gomock.Controller) *Mocks {
	m := &Mocks{
		UoW:           sharedmock.NewMockUnitOfWork(ctrl),
		Tx:            sharedmock.NewMockTx(ctrl),
		Reads:         sharedmock.NewMockReads(ctrl),
		Stations:      sharedmock.NewMockStationReader(ctrl),
		Busy:          sharedmock.NewMockBusyIntervalReader(ctrl),
		Rates:         sharedmock.NewMockRateReader(ctrl),
		BookingReads:  sharedmock.NewMockBookingReader(ctrl),
		Intents:       sharedmock.NewMockIntentRepository(ctrl),
		Bookings:      sharedmock.NewMockBookingRepository(ctrl),
		Notifications: sharedmock.NewMockNotificationRepository(ctrl),
		Locks:         sharedmock.NewMockStationLocker(ctrl),
	}

	m.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.Tx)
		}).AnyTimes()
	m.UoW.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Reads) error) error {
			return fn(ctx, m.Reads)
		}).AnyTimes()
	m.UoW.EXPECT().Reads().Return(m.Reads).AnyTimes()

	m.Tx.EXPECT().Reads().Return(m.Reads).AnyTimes()
	m.Tx.EXPECT().Intents().Return(m.Intents).AnyTimes()
	m.Tx.EXPECT().Bookings().Return(m.Bookings).AnyTimes()
	m.Tx.EXPECT().Notifications().Return(m.Notifications).AnyTimes()
	m.Tx.EXPECT().Locks().Return(m.Locks).AnyTimes()

	m.Reads.EXPECT().Stations().Return(m.Stations).AnyTimes()
	m.Reads.EXPECT().Busy().Return(m.Busy).AnyTimes()
	m.Reads.EXPECT().Rates().Return(m.Rates).AnyTimes()
	m.Reads.EXPECT().Bookings().Return(m.BookingReads).AnyTimes()

	return m
}
