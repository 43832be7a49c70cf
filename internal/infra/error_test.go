//go:build unit

package infra_test

import (
	"testing"

	"club-booking/internal/infra"
	"club-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name        string
		err         error
		kind        []infra.RepositoryErrorKind
		expected    infra.RepositoryErrorKind
		unavailable bool
	}{
		{name: "plain error is a db failure", err: errs.New("connection reset"), expected: infra.KindDBFailure, unavailable: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, expected: infra.KindConflict},
		{name: "explicit kind wins", err: errs.New("no rows"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, expected: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tc.err, tc.kind...)
			assert.True(t, infra.IsKind(err, tc.expected))
			assert.Equal(t, tc.unavailable, errs.Is(err, errs.ErrStorageUnavailable))
		})
	}

	t.Run("wrapped pg error stays reachable", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "40P01"}
		err := infra.WrapRepoErr("failed", pgErr)
		var target *pgconn.PgError
		assert.ErrorAs(t, err, &target)
	})
}
