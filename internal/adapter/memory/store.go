// Package memory is an in-process implementation of the store ports. It
// backs the "memory" store driver and the use case tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

var (
	_ port.CampaignStore   = (*Store)(nil)
	_ port.RewardLedger    = (*Store)(nil)
	_ port.EventRepository = (*Store)(nil)
)

type ledgerKey struct {
	identity string
	siteID   string
}

type eventKey struct {
	kind domain.EventKind
	id   snowflake.ID
}

// Store keeps campaigns, sites, ledger entries and events in maps guarded
// by a single RWMutex. Every mutation happens under the write lock, which
// gives the same atomicity the database adapter gets from row locks.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	campaigns map[string]domain.Campaign
	sites     map[string]domain.Site
	domains   map[string]string
	ledger    map[ledgerKey]domain.LedgerEntry
	events    map[eventKey]domain.Event
}

type Option func(*Store)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(opts ...Option) *Store {
	s := &Store{
		now:       time.Now,
		campaigns: make(map[string]domain.Campaign),
		sites:     make(map[string]domain.Site),
		domains:   make(map[string]string),
		ledger:    make(map[ledgerKey]domain.LedgerEntry),
		events:    make(map[eventKey]domain.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ActiveCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if c.Eligible() {
			out = append(out, cloneCampaign(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, fmt.Errorf("campaign %q: %w", id, port.ErrNotFound)
	}
	return cloneCampaign(c), nil
}

func (s *Store) CreateCampaign(_ context.Context, c domain.Campaign) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[c.ID]; ok {
		return domain.Campaign{}, port.NewValidationError("id", "campaign already exists")
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	c = cloneCampaign(c)
	s.campaigns[c.ID] = c
	return cloneCampaign(c), nil
}

func (s *Store) IncrementSpent(_ context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, port.NewValidationError("amount", "must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.campaigns[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("campaign %q: %w", id, port.ErrNotFound)
	}
	c.Spent = c.Spent.Add(amount)
	c.UpdatedAt = s.now()
	s.campaigns[id] = c
	return c.Spent, nil
}

func (s *Store) GetSite(_ context.Context, id string) (domain.Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	site, ok := s.sites[id]
	if !ok {
		return domain.Site{}, fmt.Errorf("site %q: %w", id, port.ErrNotFound)
	}
	return site, nil
}

func (s *Store) ListSites(_ context.Context) ([]domain.Site, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Site, 0, len(s.sites))
	for _, site := range s.sites {
		out = append(out, site)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateSite(_ context.Context, site domain.Site) (domain.Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(site.Domain)
	if _, ok := s.domains[key]; ok {
		return domain.Site{}, fmt.Errorf("site %q: %w", site.Domain, port.ErrDuplicateDomain)
	}
	if _, ok := s.sites[site.ID]; ok {
		return domain.Site{}, port.NewValidationError("id", "site already exists")
	}
	now := s.now()
	site.CreatedAt, site.UpdatedAt = now, now
	s.sites[site.ID] = site
	s.domains[key] = site.ID
	return site, nil
}

func (s *Store) UpdateSite(_ context.Context, id string, upd domain.SiteUpdate) (domain.Site, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	site, ok := s.sites[id]
	if !ok {
		return domain.Site{}, fmt.Errorf("site %q: %w", id, port.ErrNotFound)
	}
	if upd.RevenueShare != nil {
		site.RevenueShare = *upd.RevenueShare
	}
	if upd.PayoutAddress != nil {
		site.PayoutAddress = *upd.PayoutAddress
	}
	if upd.Disabled != nil {
		site.Disabled = *upd.Disabled
	}
	site.UpdatedAt = s.now()
	s.sites[id] = site
	return site, nil
}

func cloneCampaign(c domain.Campaign) domain.Campaign {
	c.Tags = slices.Clone(c.Tags)
	return c
}
