package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type StationChargeRuleRow struct {
	StationID     uuid.UUID
	RateID        uuid.UUID
	RateCardID    uuid.UUID
	RateName      string
	RuleID        pgtype.UUID
	Unit          pgtype.Text
	ChargeType    pgtype.Text
	AmountPerUnit pgtype.Numeric
	StartTime     pgtype.Time
	EndTime       pgtype.Time
	Days          []int16
	MinPlayers    pgtype.Int4
	MaxPlayers    pgtype.Int4
}

// Rates without rules come back as one row with a NULL rule.
const listChargeRulesForStations = `
SELECT s.id, r.id, r.rate_card_id, r.name,
       cr.id, cr.unit, cr.charge_type, cr.amount_per_unit,
       cr.start_time, cr.end_time, cr.days, cr.min_players, cr.max_players
FROM stations s
JOIN rates r ON r.id = s.rate_id
LEFT JOIN charge_rules cr ON cr.rate_id = r.id
WHERE s.id = ANY($1::uuid[])
ORDER BY s.id, cr.position
`

func (q *Queries) ListChargeRulesForStations(ctx context.Context, db DBTX, stationIDs []pgtype.UUID) ([]StationChargeRuleRow, error) {
	rows, err := db.Query(ctx, listChargeRulesForStations, stationIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (StationChargeRuleRow, error) {
		var r StationChargeRuleRow
		err := row.Scan(
			&r.StationID, &r.RateID, &r.RateCardID, &r.RateName,
			&r.RuleID, &r.Unit, &r.ChargeType, &r.AmountPerUnit,
			&r.StartTime, &r.EndTime, &r.Days, &r.MinPlayers, &r.MaxPlayers,
		)
		return r, err
	})
}
