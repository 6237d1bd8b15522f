package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

var _ port.RewardLedger = (*LedgerRepository)(nil)

// LedgerRepository implements port.RewardLedger on the reward_ledger
// table. Grants lock the (identity, site) row so the cooldown check and
// the update cannot interleave.
type LedgerRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewLedgerRepository returns a new repository instance.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool, now: time.Now}
}

// CanReward reports whether the identity is outside the cooldown window.
func (r *LedgerRepository) CanReward(ctx context.Context, id domain.Identity, siteID string, cooldown time.Duration) (bool, error) {
	var last *time.Time
	err := r.pool.QueryRow(ctx, `SELECT last_reward_at FROM reward_ledger WHERE identity = $1 AND site_id = $2`,
		id.Value, siteID).Scan(&last)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, wrapErr("check reward cooldown", err)
	}
	e := domain.LedgerEntry{LastRewardAt: last}
	return e.CooldownRemaining(r.now(), cooldown) == 0, nil
}

// Grant records a reward if the pair is outside its cooldown window.
func (r *LedgerRepository) Grant(ctx context.Context, g domain.RewardGrant) (entry domain.LedgerEntry, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return entry, wrapErr("begin grant", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = wrapErr("commit grant", err)
		}
	}()

	// make sure the row exists so the next SELECT has something to lock
	_, err = tx.Exec(ctx, `INSERT INTO reward_ledger (identity, site_id, identity_kind)
VALUES ($1, $2, $3) ON CONFLICT (identity, site_id) DO NOTHING`,
		g.Identity.Value, g.SiteID, string(g.Identity.Kind))
	if err != nil {
		return entry, wrapErr("ensure ledger row", err)
	}

	entry, err = scanLedgerEntry(tx.QueryRow(ctx, `SELECT `+ledgerColumns+`
        FROM reward_ledger
        WHERE identity = $1 AND site_id = $2
        FOR UPDATE`, g.Identity.Value, g.SiteID))
	if err != nil {
		return entry, wrapErr("lock ledger row", err)
	}

	// postgres keeps microseconds; truncate so Revert can match it later
	now := r.now().UTC().Truncate(time.Microsecond)
	if entry.CooldownRemaining(now, g.Cooldown) > 0 {
		return entry, port.ErrCooldownActive
	}

	prev := entry.LastRewardAt
	switch g.Kind {
	case domain.KindImpression:
		entry.TotalImpressions++
	case domain.KindClick:
		entry.TotalClicks++
	}
	entry.TotalEarned = entry.TotalEarned.Add(g.Amount)
	entry.LastCampaignID = g.CampaignID
	entry.LastRewardAt = &now

	_, err = tx.Exec(ctx, `UPDATE reward_ledger SET
        total_impressions = $3,
        total_clicks = $4,
        total_earned = $5,
        last_campaign_id = $6,
        last_reward_at = $7,
        updated_at = now()
    WHERE identity = $1 AND site_id = $2`,
		g.Identity.Value, g.SiteID, entry.TotalImpressions, entry.TotalClicks,
		entry.TotalEarned, entry.LastCampaignID, now)
	if err != nil {
		return entry, wrapErr("update ledger row", err)
	}

	entry.PreviousRewardAt = prev
	return entry, nil
}

// Revert compensates a grant whose settlement failed. The cooldown
// timestamp is only rolled back if no later grant replaced it.
func (r *LedgerRepository) Revert(ctx context.Context, g domain.RewardGrant, entry domain.LedgerEntry) error {
	var impressions, clicks int64
	switch g.Kind {
	case domain.KindImpression:
		impressions = 1
	case domain.KindClick:
		clicks = 1
	}
	tag, err := r.pool.Exec(ctx, `UPDATE reward_ledger SET
        total_impressions = GREATEST(total_impressions - $3, 0),
        total_clicks = GREATEST(total_clicks - $4, 0),
        total_earned = GREATEST(total_earned - $5::numeric, 0),
        last_reward_at = CASE WHEN last_reward_at = $6::timestamptz THEN $7::timestamptz ELSE last_reward_at END,
        updated_at = now()
    WHERE identity = $1 AND site_id = $2`,
		g.Identity.Value, g.SiteID, impressions, clicks, g.Amount, entry.LastRewardAt, entry.PreviousRewardAt)
	if err != nil {
		return wrapErr("revert ledger row", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revert ledger row %s/%s: %w", g.Identity.Short(), g.SiteID, port.ErrNotFound)
	}
	return nil
}

// Stats returns the ledger entry for the pair or nil.
func (r *LedgerRepository) Stats(ctx context.Context, identity, siteID string) (*domain.LedgerEntry, error) {
	entry, err := scanLedgerEntry(r.pool.QueryRow(ctx, `SELECT `+ledgerColumns+`
        FROM reward_ledger WHERE identity = $1 AND site_id = $2`, identity, siteID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("get ledger entry", err)
	}
	return &entry, nil
}

const ledgerColumns = `identity, identity_kind, site_id, last_campaign_id, last_reward_at,
        total_impressions, total_clicks, total_earned`

func scanLedgerEntry(row pgx.Row) (domain.LedgerEntry, error) {
	var (
		e    domain.LedgerEntry
		kind string
	)
	err := row.Scan(
		&e.Identity,
		&kind,
		&e.SiteID,
		&e.LastCampaignID,
		&e.LastRewardAt,
		&e.TotalImpressions,
		&e.TotalClicks,
		&e.TotalEarned,
	)
	e.IdentityKind = domain.IdentityKind(kind)
	return e, err
}
