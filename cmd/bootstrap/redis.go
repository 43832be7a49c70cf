package bootstrap

import (
	"context"
	"log/slog"

	"club-booking/internal/infra/cache"
	"club-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis yields a nil interface when REDIS_ADDR is empty so the rate cache passes through.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (redis.UniversalClient, error) {
	rdb, err := cache.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Warn("rate cache disabled (no redis address configured)")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb, nil
}
