package components

import (
	"log/slog"

	"club-booking/internal/infra/cache"
	"club-booking/internal/infra/query"
	"club-booking/internal/infra/uow"
	"club-booking/internal/pkg/config"
	"club-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Rate cache in front of the pool-backed rate store
		fx.Annotate(
			NewRateCache,
			fx.As(new(shared.RateReader)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewRateCache(rdb redis.UniversalClient, u shared.UnitOfWork, cfg config.Config, logger *slog.Logger) *cache.RateCache {
	return cache.NewRateCache(rdb, u.Reads().Rates(), cfg.Redis.RateTTL, logger)
}
