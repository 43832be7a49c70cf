package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	rateKeyPrefix  = "rate:"
	defaultRateTTL = 5 * time.Minute
)

// RateCache is a read-through cache of station rates in Redis.
// A nil client turns it into a pass-through to the inner reader.
// Redis failures are logged and fall back to the inner reader.
type RateCache struct {
	rdb    redis.UniversalClient
	inner  shared.RateReader
	ttl    time.Duration
	logger *slog.Logger
}

func NewRateCache(rdb redis.UniversalClient, inner shared.RateReader, ttl time.Duration, logger *slog.Logger) *RateCache {
	if ttl <= 0 {
		ttl = defaultRateTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateCache{
		rdb:    rdb,
		inner:  inner,
		ttl:    ttl,
		logger: logger.With("component", "rate_cache"),
	}
}

func (c *RateCache) RatesForStations(ctx context.Context, stationIDs []uuid.UUID) (map[uuid.UUID]*pricing.Rate, error) {
	if c.rdb == nil || len(stationIDs) == 0 {
		return c.inner.RatesForStations(ctx, stationIDs)
	}

	rates := make(map[uuid.UUID]*pricing.Rate, len(stationIDs))
	missing := c.lookup(ctx, stationIDs, rates)
	if len(missing) == 0 {
		return rates, nil
	}

	loaded, err := c.inner.RatesForStations(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, rate := range loaded {
		rates[id] = rate
	}
	c.store(ctx, missing, loaded)
	return rates, nil
}

// Invalidate drops cached rates for the given stations.
func (c *RateCache) Invalidate(ctx context.Context, stationIDs ...uuid.UUID) error {
	if c.rdb == nil || len(stationIDs) == 0 {
		return nil
	}
	keys := make([]string, len(stationIDs))
	for i, id := range stationIDs {
		keys[i] = rateKey(id)
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *RateCache) lookup(ctx context.Context, stationIDs []uuid.UUID, out map[uuid.UUID]*pricing.Rate) []uuid.UUID {
	keys := make([]string, len(stationIDs))
	for i, id := range stationIDs {
		keys[i] = rateKey(id)
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("rate cache read failed", "error", err)
		return stationIDs
	}

	var missing []uuid.UUID
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, stationIDs[i])
			continue
		}
		entry, err := decodeRate(raw)
		if err != nil {
			c.logger.Warn("rate cache entry is malformed", "key", keys[i], "error", err)
			missing = append(missing, stationIDs[i])
			continue
		}
		if entry != nil {
			out[stationIDs[i]] = entry
		}
	}
	return missing
}

// store caches unpriced stations too so they are not reloaded on every quote.
func (c *RateCache) store(ctx context.Context, stationIDs []uuid.UUID, loaded map[uuid.UUID]*pricing.Rate) {
	pipe := c.rdb.Pipeline()
	for _, id := range stationIDs {
		raw, err := encodeRate(loaded[id])
		if err != nil {
			c.logger.Warn("rate cache encode failed", "station_id", id, "error", err)
			continue
		}
		pipe.Set(ctx, rateKey(id), raw, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("rate cache write failed", "error", err)
	}
}

func rateKey(stationID uuid.UUID) string {
	return rateKeyPrefix + stationID.String()
}

type cachedRate struct {
	Priced     bool         `json:"priced"`
	ID         uuid.UUID    `json:"id"`
	RateCardID uuid.UUID    `json:"rateCardId"`
	Name       string       `json:"name"`
	Rules      []cachedRule `json:"rules"`
}

type cachedRule struct {
	ID            uuid.UUID       `json:"id"`
	Unit          string          `json:"unit"`
	ChargeType    string          `json:"chargeType"`
	AmountPerUnit decimal.Decimal `json:"amountPerUnit"`
	WindowStart   *time.Duration  `json:"windowStart,omitempty"`
	WindowEnd     *time.Duration  `json:"windowEnd,omitempty"`
	Days          []int           `json:"days,omitempty"`
	MinPlayers    int             `json:"minPlayers"`
	MaxPlayers    int             `json:"maxPlayers"`
}

func encodeRate(rate *pricing.Rate) (string, error) {
	if rate == nil {
		b, err := json.Marshal(cachedRate{Priced: false})
		return string(b), err
	}

	entry := cachedRate{
		Priced:     true,
		ID:         rate.ID,
		RateCardID: rate.RateCardID,
		Name:       rate.Name,
		Rules:      make([]cachedRule, len(rate.Rules)),
	}
	for i, r := range rate.Rules {
		cr := cachedRule{
			ID:            r.ID(),
			Unit:          string(r.Unit()),
			ChargeType:    string(r.ChargeType()),
			AmountPerUnit: r.AmountPerUnit(),
			MinPlayers:    r.MinPlayers(),
			MaxPlayers:    r.MaxPlayers(),
		}
		if w, ok := r.Window(); ok {
			start, end := w.Start.Duration(), w.End.Duration()
			cr.WindowStart, cr.WindowEnd = &start, &end
		}
		for _, d := range r.Days() {
			cr.Days = append(cr.Days, int(d))
		}
		entry.Rules[i] = cr
	}

	b, err := json.Marshal(entry)
	return string(b), err
}

// decodeRate returns nil without error for a station cached as unpriced.
func decodeRate(raw string) (*pricing.Rate, error) {
	var entry cachedRate
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}
	if !entry.Priced {
		return nil, nil
	}

	rate := &pricing.Rate{
		ID:         entry.ID,
		RateCardID: entry.RateCardID,
		Name:       entry.Name,
		Rules:      make([]pricing.ChargeRule, len(entry.Rules)),
	}
	for i, cr := range entry.Rules {
		var window *pricing.ActiveWindow
		if cr.WindowStart != nil && cr.WindowEnd != nil {
			start, err := pricing.FromDuration(*cr.WindowStart)
			if err != nil {
				return nil, err
			}
			end, err := pricing.FromDuration(*cr.WindowEnd)
			if err != nil {
				return nil, err
			}
			window = &pricing.ActiveWindow{Start: start, End: end}
		}
		days := make([]time.Weekday, len(cr.Days))
		for j, d := range cr.Days {
			days[j] = time.Weekday(d)
		}
		rate.Rules[i] = pricing.ReconstructChargeRule(pricing.ChargeRuleParams{
			ID:            cr.ID,
			Unit:          pricing.Unit(cr.Unit),
			ChargeType:    pricing.ChargeType(cr.ChargeType),
			AmountPerUnit: cr.AmountPerUnit,
			Window:        window,
			Days:          days,
			MinPlayers:    cr.MinPlayers,
			MaxPlayers:    cr.MaxPlayers,
		})
	}
	return rate, nil
}
