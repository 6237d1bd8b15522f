package port

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// EventRepository persists impression and click events.
type EventRepository interface {
	CreateEvent(ctx context.Context, e domain.Event) error
	// FinalizeEvent moves a pending event to a terminal status. It returns
	// ErrEventFinalized if the event already left the pending state and
	// ErrNotFound if it does not exist.
	FinalizeEvent(ctx context.Context, kind domain.EventKind, id snowflake.ID, out domain.Outcome) error
	GetEvent(ctx context.Context, kind domain.EventKind, id snowflake.ID) (domain.Event, error)
	// GetStats aggregates events created in [From, To).
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
	SiteID     *string
}

// StatsResp contains aggregated event counts and money for a period.
// Spend sums the cost of completed clicks, Rewards sums what viewers were
// paid.
type StatsResp struct {
	Impressions      int64
	Clicks           int64
	RewardedEvents   int64
	Spend            decimal.Decimal
	Rewards          decimal.Decimal
	ClickThroughRate float64
	AvgCostPerClick  decimal.Decimal
}

// Derive fills the ratio fields from the counters.
func (s *StatsResp) Derive() {
	if s.Impressions > 0 {
		s.ClickThroughRate = float64(s.Clicks) / float64(s.Impressions)
	}
	s.AvgCostPerClick = decimal.Zero
	if s.Clicks > 0 {
		s.AvgCostPerClick = s.Spend.Div(decimal.NewFromInt(s.Clicks)).Truncate(domain.AmountPrecision)
	}
}
