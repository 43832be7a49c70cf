package bootstrap

import (
	"fmt"

	"club-booking/internal/pkg/config"

	"go.uber.org/fx"
)

const maxReferenceOffset = 14 * 60 * 60

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig rejects settings the booking engine cannot run with.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Booking.IntentTTL <= 0 {
		return config.Config{}, fmt.Errorf("BOOKING_INTENT_TTL must be positive, got %s", cfg.Booking.IntentTTL)
	}
	if off := cfg.Pricing.ReferenceOffset; off < -maxReferenceOffset || off > maxReferenceOffset {
		return config.Config{}, fmt.Errorf("PRICING_REFERENCE_OFFSET out of range: %d seconds", off)
	}
	return cfg, nil
}
