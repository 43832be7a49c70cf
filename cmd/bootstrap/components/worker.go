package components

import (
	"context"
	"log/slog"

	"club-booking/internal/infra/outbox"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/config"
	"club-booking/internal/usecase/jobs"
	"club-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(u shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.Config) *jobs.IntentReaper {
			return jobs.NewIntentReaper(u, clk, logger, cfg.Booking)
		},
		func(u shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.Config) *outbox.Relay {
			return outbox.NewRelay(u, clk, logger, cfg.Kafka)
		},
	),
	fx.Invoke(
		startIntentReaper,
		startOutboxRelay,
	),
)

func startIntentReaper(lc fx.Lifecycle, reaper *jobs.IntentReaper, cfg config.Config) {
	if !cfg.Booking.ReaperEnabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return reaper.Start()
		},
		OnStop: reaper.Stop,
	})
}

func startOutboxRelay(lc fx.Lifecycle, relay *outbox.Relay) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				relay.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
