package port

import (
	"context"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// CampaignStore owns campaigns and sites. It is an outbound port;
// implementations must be safe for concurrent use and apply spend
// increments atomically.
type CampaignStore interface {
	// ActiveCampaigns returns every campaign that is active and has budget
	// left. Order is unspecified.
	ActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error)
	// IncrementSpent adds amount to the campaign spend in a single atomic
	// step and returns the new total. ErrNotFound when the campaign is
	// unknown.
	IncrementSpent(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error)

	GetSite(ctx context.Context, id string) (domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
	// CreateSite returns ErrDuplicateDomain when the domain is already
	// taken, compared case-insensitively.
	CreateSite(ctx context.Context, s domain.Site) (domain.Site, error)
	UpdateSite(ctx context.Context, id string, upd domain.SiteUpdate) (domain.Site, error)
}
