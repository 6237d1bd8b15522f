package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

// budgetGuard reserves click costs per campaign before payouts start, so
// concurrent clicks settling against the same campaign cannot push spent
// past the budget. A reservation lives until the spend increment that
// consumes it has been written.
type budgetGuard struct {
	store port.CampaignStore

	mu    sync.Mutex
	slots map[string]*budgetSlot
}

type budgetSlot struct {
	mu       sync.Mutex
	inFlight decimal.Decimal
}

func newBudgetGuard(store port.CampaignStore) *budgetGuard {
	return &budgetGuard{store: store, slots: make(map[string]*budgetSlot)}
}

func (g *budgetGuard) slot(campaignID string) *budgetSlot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.slots[campaignID]
	if !ok {
		s = &budgetSlot{inFlight: decimal.Zero}
		g.slots[campaignID] = s
	}
	return s
}

// Reserve holds amount against the campaign budget. It re-reads the
// campaign and returns ErrBudgetExhausted when spent plus everything in
// flight plus amount would exceed the budget or the campaign is paused.
// The returned release func must be called once the spend is recorded or
// abandoned.
func (g *budgetGuard) Reserve(ctx context.Context, campaignID string, amount decimal.Decimal) (func(), error) {
	s := g.slot(campaignID)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := g.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.Active {
		return nil, fmt.Errorf("campaign %q paused: %w", campaignID, port.ErrBudgetExhausted)
	}
	if c.Spent.Add(s.inFlight).Add(amount).GreaterThan(c.Budget) {
		return nil, fmt.Errorf("campaign %q: %w", campaignID, port.ErrBudgetExhausted)
	}
	s.inFlight = s.inFlight.Add(amount)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.inFlight = s.inFlight.Sub(amount)
			s.mu.Unlock()
		})
	}, nil
}
