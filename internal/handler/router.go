package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"club-booking/internal/handler/api"
	"club-booking/internal/handler/middleware"
	"club-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Pricing      *api.PricingHandler
	Booking      *api.BookingHandler
}

type Middlewares struct {
	Logger    *middleware.Logger
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Availability is public and the most expensive read, so it is rate limited per client
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/clubs/:clubId/availability", Handler: h.Availability.ByTime, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
			{Method: http.MethodPost, Path: "/availability/start-times", Handler: h.Availability.StartTimes, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote, Mw: []gin.HandlerFunc{mw.RateLimit.Limit()}},
		})

		intents := apiGroup.Group("/booking-intents")
		intents.Use(mw.Auth.RequireAuth())
		{
			addRoutes(intents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateIntent},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.ConfirmIntent},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(mw.Auth.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
