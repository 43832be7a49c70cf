//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ClubFixture is a club with a single rate card and the stations seeded for it.
type ClubFixture struct {
	ClubID     uuid.UUID
	RateID     uuid.UUID
	StationIDs []uuid.UUID
}

func CreateTestClub(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	clubID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO clubs (id, name) VALUES ($1, $2)", clubID, name)
	require.NoError(t, err)
	return clubID
}

// CreateHourlyRate inserts a rate with one all-day BASE rule billed per hour.
func CreateHourlyRate(t *testing.T, db DBLike, clubID uuid.UUID, amountPerHour string) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	cardID, rateID := uuid.New(), uuid.New()

	_, err := db.Exec(ctx, "INSERT INTO rate_cards (id, club_id, name) VALUES ($1, $2, $3)", cardID, clubID, "Default")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO rates (id, rate_card_id, name) VALUES ($1, $2, $3)", rateID, cardID, "Standard")
	require.NoError(t, err)
	_, err = db.Exec(ctx, `
		INSERT INTO charge_rules (rate_id, position, unit, charge_type, amount_per_unit, min_players, max_players)
		VALUES ($1, 0, 'PER_HOUR', 'BASE', $2::numeric, 1, 8)`,
		rateID, amountPerHour)
	require.NoError(t, err)

	return rateID
}

func CreateTestStation(t *testing.T, db DBLike, clubID, rateID uuid.UUID, stationType, name string) uuid.UUID {
	t.Helper()

	stationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO stations (id, club_id, station_type, name, rate_id) VALUES ($1, $2, $3, $4, $5)",
		stationID, clubID, stationType, name, rateID)
	require.NoError(t, err)
	return stationID
}

// SeedClub creates a club whose padel courts all share one hourly rate.
func SeedClub(t *testing.T, db DBLike, amountPerHour string, courts int) ClubFixture {
	t.Helper()

	clubID := CreateTestClub(t, db, "Test Club")
	rateID := CreateHourlyRate(t, db, clubID, amountPerHour)

	fx := ClubFixture{ClubID: clubID, RateID: rateID}
	for i := 1; i <= courts; i++ {
		fx.StationIDs = append(fx.StationIDs,
			CreateTestStation(t, db, clubID, rateID, "padel", fmt.Sprintf("Court %d", i)))
	}
	return fx
}

func CountPendingNotifications(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND published_at IS NULL", kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
