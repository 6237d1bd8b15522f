package port

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the ad engine. This
// interface represents the primary port into the application domain; the
// HTTP adapter depends on it and tests can substitute it.
type AdUseCase interface {
	// RequestAd selects a campaign for the site and tags. It returns nil
	// when nothing can be served: unknown or disabled site, no eligible
	// campaign, or a store failure.
	RequestAd(ctx context.Context, req AdRequest) (*AdResponse, error)

	// RegisterImpression records a view and, when the viewer is outside
	// its cooldown, grants and settles the impression reward.
	RegisterImpression(ctx context.Context, req ImpressionRequest) (*ImpressionResult, error)

	// RegisterClick records a click and returns the URL to redirect to.
	// Billing and payouts run in the background. When the campaign or site
	// cannot be resolved the fallback URL is returned together with the
	// error.
	RegisterClick(ctx context.Context, req ClickRequest) (string, error)

	// RewardStatus reports whether the viewer could be rewarded now.
	RewardStatus(ctx context.Context, req RewardStatusRequest) (*RewardStatus, error)

	// LookupSettlement returns the event a settlement memo refers to.
	LookupSettlement(ctx context.Context, memo string) (domain.Event, error)

	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	ListSites(ctx context.Context) ([]domain.Site, error)
	CreateSite(ctx context.Context, req CreateSiteRequest) (domain.Site, error)
	UpdateSite(ctx context.Context, id string, upd domain.SiteUpdate) (domain.Site, error)
	ValidateSite(ctx context.Context, siteID string) (*SiteValidation, error)

	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (domain.Campaign, error)
}

type AdRequest struct {
	SiteID           string   `validate:"required,max=64"`
	Tags             []string `validate:"max=20,dive,max=50"`
	Viewer           domain.Viewer
	RecordImpression bool
}

// AdResponse represents the selected ad returned to the widget.
type AdResponse struct {
	CampaignID     string
	AdvertiserName string
	ImageURL       string
	TargetURL      string
	ClickURL       string
	ImpressionURL  string
	Tags           []string
	Impression     *ImpressionResult
}

type ImpressionRequest struct {
	CampaignID string `validate:"required,max=64"`
	SiteID     string `validate:"required,max=64"`
	Viewer     domain.Viewer
}

type ImpressionResult struct {
	Registered        bool
	EventID           snowflake.ID
	Eligible          bool
	Reward            decimal.Decimal
	Status            domain.SettlementStatus
	CooldownRemaining time.Duration
}

type ClickRequest struct {
	CampaignID string `validate:"required,max=64"`
	SiteID     string `validate:"required,max=64"`
	Viewer     domain.Viewer
}

type RewardStatusRequest struct {
	SiteID string `validate:"required,max=64"`
	Viewer domain.Viewer
}

// RewardRates are the published reward parameters.
type RewardRates struct {
	ImpressionReward      decimal.Decimal
	ClickRewardPercentage decimal.Decimal
}

type RewardStatus struct {
	Eligible          bool
	Identity          domain.Identity
	CooldownRemaining time.Duration
	Cooldown          time.Duration
	Stats             *domain.LedgerEntry
	Rates             RewardRates
}

type CreateSiteRequest struct {
	Name          string          `validate:"required,max=200"`
	Domain        string          `validate:"required,fqdn"`
	PayoutAddress string          `validate:"required,stellar_address"`
	RevenueShare  decimal.Decimal `validate:"-"`
}

type CreateCampaignRequest struct {
	ID                string          `validate:"omitempty,max=64"`
	AdvertiserName    string          `validate:"required,max=200"`
	AdvertiserAddress string          `validate:"required,stellar_address"`
	ImageURL          string          `validate:"required,url"`
	TargetURL         string          `validate:"required,url"`
	Budget            decimal.Decimal `validate:"-"`
	CostPerClick      decimal.Decimal `validate:"-"`
	Tags              []string        `validate:"max=20,dive,max=50"`
}

// SiteValidation is the result of checking a site's payout setup.
type SiteValidation struct {
	Site          domain.Site
	AccountExists bool
	Balance       decimal.Decimal
}
