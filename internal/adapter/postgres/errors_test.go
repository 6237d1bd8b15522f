package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, port.ErrNotFound},
		{"duplicate domain", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: siteDomainIndex}, port.ErrDuplicateDomain},
		{"duplicate id", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "campaigns_pkey"}, port.ErrValidation},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), port.ErrStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, wrapErr("op", tt.err), tt.want)
		})
	}

	assert.NoError(t, wrapErr("op", nil))

	other := errors.New("boom")
	err := wrapErr("op", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, port.ErrStoreUnavailable)
}

func TestEventTable(t *testing.T) {
	table, err := eventTable(domain.KindClick)
	assert.NoError(t, err)
	assert.Equal(t, "clicks", table)

	_, err = eventTable("view")
	assert.ErrorIs(t, err, port.ErrValidation)
}
