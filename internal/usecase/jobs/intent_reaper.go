package jobs

import (
	"context"
	"log/slog"
	"time"

	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/config"
	"club-booking/internal/pkg/errs"
	"club-booking/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

const reapTimeout = 30 * time.Second

// IntentReaper deletes unconfirmed intents past their expiry on a cron schedule.
// Reads already ignore expired intents, so a late run never frees a slot early.
type IntentReaper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	logger   *slog.Logger
	schedule string
	cron     *cron.Cron
}

func NewIntentReaper(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.BookingConfig) *IntentReaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &IntentReaper{
		uow:      uow,
		clock:    clk,
		logger:   logger.With("component", "intent_reaper"),
		schedule: cfg.ReaperSchedule,
	}
}

// Reap runs one eviction pass and returns how many intents were deleted.
func (r *IntentReaper) Reap(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Intents().DeleteExpired(ctx, r.clock.Now())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	return deleted, err
}

// Start schedules Reap. Overlapping runs are skipped.
func (r *IntentReaper) Start() error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	_, err := c.AddFunc(r.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reapTimeout)
		defer cancel()

		n, err := r.Reap(ctx)
		if err != nil {
			r.logger.Error("intent reap failed", "error", err)
			return
		}
		if n > 0 {
			r.logger.Info("expired intents deleted", "count", n)
		}
	})
	if err != nil {
		return errs.Wrapf(err, "invalid reaper schedule %q", r.schedule)
	}

	r.cron = c
	c.Start()
	r.logger.Info("intent reaper started", "schedule", r.schedule)
	return nil
}

// Stop waits for a running pass to finish or ctx to expire.
func (r *IntentReaper) Stop(ctx context.Context) error {
	if r.cron == nil {
		return nil
	}
	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
