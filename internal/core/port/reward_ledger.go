package port

import (
	"context"
	"time"

	"stellar-ads/internal/core/domain"
)

// RewardLedger tracks per (identity, site) reward history and enforces the
// cooldown rule.
type RewardLedger interface {
	// CanReward reports whether the identity is outside its cooldown window
	// on the site. It is advisory; Grant is the authoritative check.
	CanReward(ctx context.Context, id domain.Identity, siteID string, cooldown time.Duration) (bool, error)
	// Grant atomically checks the cooldown and records the reward. It
	// returns ErrCooldownActive if another reward landed inside the
	// window; concurrent grants for the same pair never both succeed.
	Grant(ctx context.Context, g domain.RewardGrant) (domain.LedgerEntry, error)
	// Revert undoes a grant whose settlement failed.
	Revert(ctx context.Context, g domain.RewardGrant, entry domain.LedgerEntry) error
	// Stats returns the ledger entry of the pair, or nil when it has none.
	Stats(ctx context.Context, identity, siteID string) (*domain.LedgerEntry, error)
}
