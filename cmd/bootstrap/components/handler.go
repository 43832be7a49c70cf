package components

import (
	"club-booking/internal/handler"
	"club-booking/internal/handler/api"
	"club-booking/internal/handler/middleware"
	"club-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine       *gin.Engine
	Config       config.Config
	Logger       *middleware.Logger
	Availability *api.AvailabilityHandler
	Pricing      *api.PricingHandler
	Booking      *api.BookingHandler
	Auth         *middleware.AuthMiddleware
	RateLimit    *middleware.RateLimiter
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Availability: p.Availability,
			Pricing:      p.Pricing,
			Booking:      p.Booking,
		},
		handler.Middlewares{
			Logger:    p.Logger,
			Auth:      p.Auth,
			RateLimit: p.RateLimit,
		},
	)
}
