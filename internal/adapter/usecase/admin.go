package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/matching"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/identity"
)

// defaultStatsWindow is used when a stats request has no lower bound.
const defaultStatsWindow = 24 * time.Hour

// GetStats returns aggregated stats for campaigns in a period. Missing
// bounds default to the last 24 hours.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if req.To.IsZero() {
		req.To = u.now()
	}
	if req.From.IsZero() {
		req.From = req.To.Add(-defaultStatsWindow)
	}
	if !req.From.Before(req.To) {
		return nil, port.NewValidationError("from", "must be before to")
	}
	return u.events.GetStats(ctx, req)
}

func (u *AdUseCase) ListSites(ctx context.Context) ([]domain.Site, error) {
	return u.store.ListSites(ctx)
}

// CreateSite onboards a publisher site.
func (u *AdUseCase) CreateSite(ctx context.Context, req port.CreateSiteRequest) (domain.Site, error) {
	if err := u.check(req); err != nil {
		return domain.Site{}, err
	}
	if err := checkShare(req.RevenueShare); err != nil {
		return domain.Site{}, err
	}
	return u.store.CreateSite(ctx, domain.Site{
		ID:            newID("site"),
		Name:          strings.TrimSpace(req.Name),
		Domain:        strings.ToLower(strings.TrimSpace(req.Domain)),
		PayoutAddress: req.PayoutAddress,
		RevenueShare:  req.RevenueShare,
	})
}

// UpdateSite changes the revenue share, payout address or disabled flag.
func (u *AdUseCase) UpdateSite(ctx context.Context, id string, upd domain.SiteUpdate) (domain.Site, error) {
	if upd.Empty() {
		return domain.Site{}, port.NewValidationError("body", "nothing to update")
	}
	if upd.RevenueShare != nil {
		if err := checkShare(*upd.RevenueShare); err != nil {
			return domain.Site{}, err
		}
	}
	if upd.PayoutAddress != nil && !identity.ValidAddress(*upd.PayoutAddress) {
		return domain.Site{}, port.NewValidationError("payoutAddress", "must be a valid Stellar account address")
	}
	return u.store.UpdateSite(ctx, id, upd)
}

// ValidateSite checks that the site exists and that its payout account
// is open on the settlement network.
func (u *AdUseCase) ValidateSite(ctx context.Context, siteID string) (*port.SiteValidation, error) {
	if strings.TrimSpace(siteID) == "" {
		return nil, port.NewValidationError("siteId", "is required")
	}
	site, err := u.store.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	res := &port.SiteValidation{Site: site, Balance: decimal.Zero}
	balance, err := u.gateway.AccountBalance(ctx, site.PayoutAddress)
	switch {
	case errors.Is(err, port.ErrAccountNotFound):
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("payout account of %q: %w", site.ID, err)
	}
	res.AccountExists = true
	res.Balance = balance
	return res, nil
}

// ListCampaigns returns the campaigns that can currently be served.
func (u *AdUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.store.ActiveCampaigns(ctx)
}

// CreateCampaign registers a funded campaign. It starts active with
// nothing spent.
func (u *AdUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignRequest) (domain.Campaign, error) {
	if err := u.check(req); err != nil {
		return domain.Campaign{}, err
	}
	if !req.Budget.IsPositive() {
		return domain.Campaign{}, port.NewValidationError("budget", "must be positive")
	}
	if !req.CostPerClick.IsPositive() {
		return domain.Campaign{}, port.NewValidationError("costPerClick", "must be positive")
	}
	if !req.CostPerClick.Equal(req.CostPerClick.Truncate(domain.AmountPrecision)) {
		return domain.Campaign{}, port.NewValidationError("costPerClick", "too many decimal places")
	}
	id := req.ID
	if id == "" {
		id = newID("campaign")
	}
	return u.store.CreateCampaign(ctx, domain.Campaign{
		ID:                id,
		AdvertiserName:    req.AdvertiserName,
		AdvertiserAddress: req.AdvertiserAddress,
		ImageURL:          req.ImageURL,
		TargetURL:         req.TargetURL,
		Budget:            req.Budget,
		Spent:             decimal.Zero,
		CostPerClick:      req.CostPerClick,
		Active:            true,
		Tags:              matching.NormalizeTags(req.Tags),
	})
}

func newID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
