package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"stellar-ads/internal/core/port"
)

const (
	codeUniqueViolation = "23505"

	siteDomainIndex = "sites_domain_lower_idx"
)

// wrapErr maps driver errors to port sentinels. op names the failed
// operation and ends up in the message.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, port.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		if pgErr.ConstraintName == siteDomainIndex {
			return fmt.Errorf("%s: %w", op, port.ErrDuplicateDomain)
		}
		return fmt.Errorf("%s: %w", op, port.NewValidationError("id", "already exists"))
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, port.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
