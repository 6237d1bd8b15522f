package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

func (s *Store) CanReward(_ context.Context, id domain.Identity, siteID string, cooldown time.Duration) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.ledger[ledgerKey{id.Value, siteID}]
	if !ok {
		return true, nil
	}
	return e.CooldownRemaining(s.now(), cooldown) == 0, nil
}

func (s *Store) Grant(_ context.Context, g domain.RewardGrant) (domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := ledgerKey{g.Identity.Value, g.SiteID}
	e, ok := s.ledger[key]
	if !ok {
		e = domain.LedgerEntry{
			Identity:     g.Identity.Value,
			IdentityKind: g.Identity.Kind,
			SiteID:       g.SiteID,
			TotalEarned:  decimal.Zero,
		}
	}
	if e.CooldownRemaining(now, g.Cooldown) > 0 {
		return e, port.ErrCooldownActive
	}

	prev := e.LastRewardAt
	switch g.Kind {
	case domain.KindImpression:
		e.TotalImpressions++
	case domain.KindClick:
		e.TotalClicks++
	}
	e.TotalEarned = e.TotalEarned.Add(g.Amount)
	e.LastCampaignID = g.CampaignID
	e.LastRewardAt = &now
	s.ledger[key] = e

	e.PreviousRewardAt = prev
	return e, nil
}

func (s *Store) Revert(_ context.Context, g domain.RewardGrant, entry domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ledgerKey{g.Identity.Value, g.SiteID}
	e, ok := s.ledger[key]
	if !ok {
		return fmt.Errorf("ledger entry %s/%s: %w", g.Identity.Short(), g.SiteID, port.ErrNotFound)
	}
	switch g.Kind {
	case domain.KindImpression:
		e.TotalImpressions = max(e.TotalImpressions-1, 0)
	case domain.KindClick:
		e.TotalClicks = max(e.TotalClicks-1, 0)
	}
	e.TotalEarned = decimal.Max(e.TotalEarned.Sub(g.Amount), decimal.Zero)
	// a later grant may have landed meanwhile; only roll back our own timestamp
	if e.LastRewardAt != nil && entry.LastRewardAt != nil && e.LastRewardAt.Equal(*entry.LastRewardAt) {
		e.LastRewardAt = entry.PreviousRewardAt
	}
	s.ledger[key] = e
	return nil
}

func (s *Store) Stats(_ context.Context, identity, siteID string) (*domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.ledger[ledgerKey{identity, siteID}]
	if !ok {
		return nil, nil
	}
	return &e, nil
}
