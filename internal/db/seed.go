package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the demo fixture of publishers and campaigns.
type SeedData struct {
	Sites     []SeedSite     `yaml:"sites"`
	Campaigns []SeedCampaign `yaml:"campaigns"`
}

type SeedSite struct {
	ID            string          `yaml:"id"`
	Name          string          `yaml:"name"`
	Domain        string          `yaml:"domain"`
	PayoutAddress string          `yaml:"payout_address"`
	RevenueShare  decimal.Decimal `yaml:"revenue_share"`
}

type SeedCampaign struct {
	ID                string          `yaml:"id"`
	AdvertiserName    string          `yaml:"advertiser_name"`
	AdvertiserAddress string          `yaml:"advertiser_address"`
	ImageURL          string          `yaml:"image_url"`
	TargetURL         string          `yaml:"target_url"`
	Budget            decimal.Decimal `yaml:"budget"`
	CostPerClick      decimal.Decimal `yaml:"cost_per_click"`
	Tags              []string        `yaml:"tags"`
}

// LoadSeed parses the embedded fixture.
func LoadSeed() (SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return data, fmt.Errorf("parse seed: %w", err)
	}
	return data, nil
}

// Addresses returns every payout and advertiser address in the fixture.
func (d SeedData) Addresses() []string {
	out := make([]string, 0, len(d.Sites)+len(d.Campaigns))
	for _, s := range d.Sites {
		out = append(out, s.PayoutAddress)
	}
	for _, c := range d.Campaigns {
		out = append(out, c.AdvertiserAddress)
	}
	return out
}

// Seed inserts the demo sites and campaigns into the store. Records that
// already exist are left untouched, so seeding is safe to repeat. It
// returns how many records were created.
func Seed(ctx context.Context, store port.CampaignStore, log *slog.Logger) (int, error) {
	data, err := LoadSeed()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, s := range data.Sites {
		_, err := store.GetSite(ctx, s.ID)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, port.ErrNotFound):
			return created, fmt.Errorf("seed site %q: %w", s.ID, err)
		}
		if _, err = store.CreateSite(ctx, domain.Site{
			ID:            s.ID,
			Name:          s.Name,
			Domain:        s.Domain,
			PayoutAddress: s.PayoutAddress,
			RevenueShare:  s.RevenueShare,
		}); err != nil {
			return created, fmt.Errorf("seed site %q: %w", s.ID, err)
		}
		created++
	}

	for _, c := range data.Campaigns {
		_, err := store.GetCampaign(ctx, c.ID)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, port.ErrNotFound):
			return created, fmt.Errorf("seed campaign %q: %w", c.ID, err)
		}
		if _, err = store.CreateCampaign(ctx, domain.Campaign{
			ID:                c.ID,
			AdvertiserName:    c.AdvertiserName,
			AdvertiserAddress: c.AdvertiserAddress,
			ImageURL:          c.ImageURL,
			TargetURL:         c.TargetURL,
			Budget:            c.Budget,
			Spent:             decimal.Zero,
			CostPerClick:      c.CostPerClick,
			Active:            true,
			Tags:              c.Tags,
		}); err != nil {
			return created, fmt.Errorf("seed campaign %q: %w", c.ID, err)
		}
		created++
	}

	log.Info("seed applied",
		slog.Int("created", created),
		slog.Int("sites", len(data.Sites)),
		slog.Int("campaigns", len(data.Campaigns)))
	return created, nil
}
