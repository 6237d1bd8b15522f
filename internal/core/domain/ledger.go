package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the per (identity, site) reward history. It is the
// authoritative state for the cooldown rule.
type LedgerEntry struct {
	Identity         string
	IdentityKind     IdentityKind
	SiteID           string
	LastCampaignID   string
	LastRewardAt     *time.Time
	TotalImpressions int64
	TotalClicks      int64
	TotalEarned      decimal.Decimal

	// PreviousRewardAt holds LastRewardAt as it was before the grant that
	// produced this entry. It is not persisted.
	PreviousRewardAt *time.Time
}

// CooldownRemaining returns how long until the identity may be rewarded
// again, or zero when it already may.
func (e LedgerEntry) CooldownRemaining(now time.Time, cooldown time.Duration) time.Duration {
	if e.LastRewardAt == nil {
		return 0
	}
	left := e.LastRewardAt.Add(cooldown).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// RewardGrant describes a reward to be recorded for an identity on a site.
type RewardGrant struct {
	Identity   Identity
	SiteID     string
	CampaignID string
	Kind       EventKind
	Amount     decimal.Decimal
	Cooldown   time.Duration
}
