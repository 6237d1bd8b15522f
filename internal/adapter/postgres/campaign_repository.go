package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

const (
	campaignColumns = `id, advertiser_name, advertiser_address, image_url, target_url,
        budget, spent, cost_per_click, active, tags, created_at, updated_at`
	siteColumns = `id, name, domain, payout_address, revenue_share, disabled, created_at, updated_at`
)

var _ port.CampaignStore = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignStore using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ActiveCampaigns returns campaigns that are active and still have budget.
func (r *CampaignRepository) ActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaigns
        WHERE active AND spent < budget`)
	if err != nil {
		return nil, wrapErr("query active campaigns", err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, wrapErr("scan active campaigns", err)
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return domain.Campaign{}, wrapErr(fmt.Sprintf("get campaign %q", id), err)
	}
	return c, nil
}

// CreateCampaign inserts a campaign. An existing id is a validation error.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	if c.Tags == nil {
		c.Tags = []string{}
	}
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, advertiser_name, advertiser_address, image_url, target_url, budget, spent, cost_per_click, active, tags)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING created_at, updated_at`,
		c.ID, c.AdvertiserName, c.AdvertiserAddress, c.ImageURL, c.TargetURL,
		c.Budget, c.Spent, c.CostPerClick, c.Active, c.Tags,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Campaign{}, wrapErr(fmt.Sprintf("create campaign %q", c.ID), err)
	}
	return c, nil
}

// IncrementSpent adds amount to spent with a single UPDATE so concurrent
// increments are serialized by the row lock.
func (r *CampaignRepository) IncrementSpent(ctx context.Context, id string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, port.NewValidationError("amount", "must be positive")
	}
	var spent decimal.Decimal
	err := r.pool.QueryRow(ctx, `UPDATE campaigns
        SET spent = spent + $2, updated_at = now()
        WHERE id = $1
        RETURNING spent`, id, amount).Scan(&spent)
	if err != nil {
		return decimal.Zero, wrapErr(fmt.Sprintf("increment spent of %q", id), err)
	}
	return spent, nil
}

// GetSite returns a site by id.
func (r *CampaignRepository) GetSite(ctx context.Context, id string) (domain.Site, error) {
	s, err := scanSite(r.pool.QueryRow(ctx, `SELECT `+siteColumns+` FROM sites WHERE id = $1`, id))
	if err != nil {
		return domain.Site{}, wrapErr(fmt.Sprintf("get site %q", id), err)
	}
	return s, nil
}

// ListSites returns all sites, oldest first.
func (r *CampaignRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+siteColumns+` FROM sites ORDER BY created_at, id`)
	if err != nil {
		return nil, wrapErr("query sites", err)
	}
	sites, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Site, error) {
		return scanSite(row)
	})
	if err != nil {
		return nil, wrapErr("scan sites", err)
	}
	return sites, nil
}

// CreateSite inserts a site. Domain uniqueness is enforced by a unique
// index on lower(domain).
func (r *CampaignRepository) CreateSite(ctx context.Context, s domain.Site) (domain.Site, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO sites
    (id, name, domain, payout_address, revenue_share, disabled)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING created_at, updated_at`,
		s.ID, s.Name, s.Domain, s.PayoutAddress, s.RevenueShare, s.Disabled,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Site{}, wrapErr(fmt.Sprintf("create site %q", s.Domain), err)
	}
	return s, nil
}

// UpdateSite applies the non-nil fields of upd.
func (r *CampaignRepository) UpdateSite(ctx context.Context, id string, upd domain.SiteUpdate) (domain.Site, error) {
	s, err := scanSite(r.pool.QueryRow(ctx, `UPDATE sites SET
        revenue_share = COALESCE($2::numeric, revenue_share),
        payout_address = COALESCE($3::text, payout_address),
        disabled = COALESCE($4::boolean, disabled),
        updated_at = now()
    WHERE id = $1
    RETURNING `+siteColumns, id, upd.RevenueShare, upd.PayoutAddress, upd.Disabled))
	if err != nil {
		return domain.Site{}, wrapErr(fmt.Sprintf("update site %q", id), err)
	}
	return s, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.AdvertiserName,
		&c.AdvertiserAddress,
		&c.ImageURL,
		&c.TargetURL,
		&c.Budget,
		&c.Spent,
		&c.CostPerClick,
		&c.Active,
		&c.Tags,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func scanSite(row pgx.Row) (domain.Site, error) {
	var s domain.Site
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Domain,
		&s.PayoutAddress,
		&s.RevenueShare,
		&s.Disabled,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}
