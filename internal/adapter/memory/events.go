package memory

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

func (s *Store) CreateEvent(_ context.Context, e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := eventKey{e.Kind, e.ID}
	if _, ok := s.events[key]; ok {
		return fmt.Errorf("%s %d already recorded", e.Kind, e.ID)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	s.events[key] = e
	return nil
}

func (s *Store) FinalizeEvent(_ context.Context, kind domain.EventKind, id snowflake.ID, out domain.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := eventKey{kind, id}
	e, ok := s.events[key]
	if !ok {
		return fmt.Errorf("%s %d: %w", kind, id, port.ErrNotFound)
	}
	if e.Status != domain.StatusPending {
		return fmt.Errorf("%s %d is %s: %w", kind, id, e.Status, port.ErrEventFinalized)
	}
	settledAt := out.SettledAt
	e.Status = out.Status
	e.RewardAmount = out.RewardAmount
	e.SettlementRef = out.SettlementRef
	e.SettledAt = &settledAt
	s.events[key] = e
	return nil
}

func (s *Store) GetEvent(_ context.Context, kind domain.EventKind, id snowflake.ID) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[eventKey{kind, id}]
	if !ok {
		return domain.Event{}, fmt.Errorf("%s %d: %w", kind, id, port.ErrNotFound)
	}
	return e, nil
}

func (s *Store) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := &port.StatsResp{Spend: decimal.Zero, Rewards: decimal.Zero}
	for _, e := range s.events {
		if e.CreatedAt.Before(req.From) || !e.CreatedAt.Before(req.To) {
			continue
		}
		if req.CampaignID != nil && e.CampaignID != *req.CampaignID {
			continue
		}
		if req.SiteID != nil && e.SiteID != *req.SiteID {
			continue
		}
		switch e.Kind {
		case domain.KindImpression:
			resp.Impressions++
		case domain.KindClick:
			resp.Clicks++
		}
		if e.Status != domain.StatusCompleted {
			continue
		}
		if e.RewardAmount.IsPositive() {
			resp.RewardedEvents++
			resp.Rewards = resp.Rewards.Add(e.RewardAmount)
		}
		if e.Kind == domain.KindClick {
			resp.Spend = resp.Spend.Add(e.Cost)
		}
	}
	resp.Derive()
	return resp, nil
}
