//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"club-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "12.5", "0.0001", "-3.75", "1234567.8900"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(125), Exp: -1, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "12.5", got.String())
}

func TestDurationTime(t *testing.T) {
	d := 22*time.Hour + 30*time.Minute
	got, ok := pgconv.DurationFromTime(pgconv.DurationToTime(d))
	require.True(t, ok)
	assert.Equal(t, d, got)

	_, ok = pgconv.DurationFromTime(pgtype.Time{})
	assert.False(t, ok)
}

func TestUUIDs(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
	assert.Len(t, pgconv.UUIDsToPgtype([]uuid.UUID{id, uuid.New()}), 2)
}
