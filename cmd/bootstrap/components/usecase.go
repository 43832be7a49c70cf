package components

import (
	"log/slog"

	"club-booking/internal/domain/booking"
	"club-booking/internal/domain/pricing"
	"club-booking/internal/pkg/clock"
	"club-booking/internal/pkg/config"
	"club-booking/internal/usecase"
	"club-booking/internal/usecase/commands"
	"club-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config, logger *slog.Logger) *pricing.Calculator {
			return pricing.NewCalculator(cfg.Pricing.Location(), logger)
		},
		fx.As(new(booking.PriceCalculator)),
	),
	func(clk clock.Clock, calc booking.PriceCalculator, cfg config.Config) *booking.Factory {
		return booking.NewFactory(clk, calc, cfg.Booking.IntentTTL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
