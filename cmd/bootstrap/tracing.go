package bootstrap

import (
	"context"
	"log/slog"

	"club-booking/internal/infra/tracing"
	"club-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(
		SetupTracing,
	),
)

func SetupTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := tracing.Setup(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}
	if cfg.Tracing.Enabled {
		logger.Info("tracing enabled", "endpoint", cfg.Tracing.OTLPEndpoint, "service", cfg.Tracing.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
