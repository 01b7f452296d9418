//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"tour-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: pgconv.CodeUniqueViolation}, want: KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: pgconv.CodeForeignKeyViolation}, want: KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: pgconv.CodeCheckViolation}, want: KindCheckViolated},
		{name: "anything else", err: errors.New("connection reset"), want: KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", tc.err)
			assert.True(t, IsKind(err, tc.want), "got %v", err)
		})
	}
}

func TestWrapRepoErr_ExplicitKindWins(t *testing.T) {
	err := WrapRepoErr("tour not found", errors.New("boom"), KindNotFound)
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindDBFailure))
	assert.Contains(t, err.Error(), "tour not found")
}

func TestWrapRepoErr_KeepsCause(t *testing.T) {
	err := WrapRepoErr("reserve seat", pgx.ErrNoRows)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
