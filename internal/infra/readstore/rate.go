package readstore

import (
	"context"
	"time"

	"club-booking/internal/domain/pricing"
	"club-booking/internal/infra"
	"club-booking/internal/infra/query"
	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RateReadQueries interface {
	ListChargeRulesForStations(ctx context.Context, db query.DBTX, stationIDs []pgtype.UUID) ([]query.StationChargeRuleRow, error)
}

type RateReadStore struct {
	queries RateReadQueries
	db      query.DBTX
}

func NewRateReadStore(queries RateReadQueries, db query.DBTX) *RateReadStore {
	return &RateReadStore{
		queries: queries,
		db:      db,
	}
}

// RatesForStations maps each priced station to its rate with ordered charge rules.
// Stations without a rate are absent from the result.
func (r *RateReadStore) RatesForStations(ctx context.Context, stationIDs []uuid.UUID) (map[uuid.UUID]*pricing.Rate, error) {
	rates := make(map[uuid.UUID]*pricing.Rate, len(stationIDs))
	if len(stationIDs) == 0 {
		return rates, nil
	}

	rows, err := r.queries.ListChargeRulesForStations(ctx, r.db, pgconv.UUIDsToPgtype(stationIDs))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list charge rules", err)
	}

	for _, row := range rows {
		rate, ok := rates[row.StationID]
		if !ok {
			rate = &pricing.Rate{
				ID:         row.RateID,
				RateCardID: row.RateCardID,
				Name:       row.RateName,
				Rules:      []pricing.ChargeRule{},
			}
			rates[row.StationID] = rate
		}
		if !row.RuleID.Valid {
			continue
		}
		rule, err := toChargeRule(row)
		if err != nil {
			return nil, err
		}
		rate.Rules = append(rate.Rules, rule)
	}
	return rates, nil
}

// toChargeRule keeps unknown unit and charge type values so pricing can fail on them.
func toChargeRule(row query.StationChargeRuleRow) (pricing.ChargeRule, error) {
	amount, err := pgconv.DecimalFromNumeric(row.AmountPerUnit)
	if err != nil {
		return pricing.ChargeRule{}, infra.WrapRepoErr("charge rule amount is malformed", err, infra.KindDBFailure)
	}

	var window *pricing.ActiveWindow
	start, hasStart := pgconv.DurationFromTime(row.StartTime)
	end, hasEnd := pgconv.DurationFromTime(row.EndTime)
	if hasStart && hasEnd {
		from, err := pricing.FromDuration(start)
		if err != nil {
			return pricing.ChargeRule{}, infra.WrapRepoErr("charge rule window is malformed", err, infra.KindDBFailure)
		}
		to, err := pricing.FromDuration(end)
		if err != nil {
			return pricing.ChargeRule{}, infra.WrapRepoErr("charge rule window is malformed", err, infra.KindDBFailure)
		}
		window = &pricing.ActiveWindow{Start: from, End: to}
	}

	days := make([]time.Weekday, 0, len(row.Days))
	for _, d := range row.Days {
		days = append(days, time.Weekday(d))
	}

	return pricing.ReconstructChargeRule(pricing.ChargeRuleParams{
		ID:            uuid.UUID(row.RuleID.Bytes),
		Unit:          pricing.Unit(pgconv.StringFromPgtype(row.Unit)),
		ChargeType:    pricing.ChargeType(pgconv.StringFromPgtype(row.ChargeType)),
		AmountPerUnit: amount,
		Window:        window,
		Days:          days,
		MinPlayers:    int(pgconv.Int32FromPgtype(row.MinPlayers)),
		MaxPlayers:    int(pgconv.Int32FromPgtype(row.MaxPlayers)),
	}), nil
}
