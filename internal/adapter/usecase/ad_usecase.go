package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/matching"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/identity"
)

var _ port.AdUseCase = (*AdUseCase)(nil)

// compensationTimeout bounds the bookkeeping done after a settlement
// attempt, which must not inherit an already expired task context.
const compensationTimeout = 5 * time.Second

// Config holds the tunables of the ad engine.
type Config struct {
	APIBaseURL          string
	FallbackRedirectURL string
	ImpressionReward    decimal.Decimal
	ClickRewardFraction decimal.Decimal
	WalletCooldown      time.Duration
	AnonymousCooldown   time.Duration
	WeightScale         int64
	FingerprintSalt     string
	MemoSalt            string
	NodeID              int64
}

// Deps are the collaborators of the ad engine. Random and Now are
// optional.
type Deps struct {
	Log     *slog.Logger
	Store   port.CampaignStore
	Ledger  port.RewardLedger
	Events  port.EventRepository
	Gateway port.SettlementGateway
	Queue   port.TaskQueue
	Random  func() matching.Source
	Now     func() time.Time
}

// AdUseCase provides business logic for ad selection and event processing.
// It orchestrates the stores, the reward ledger and the settlement gateway
// to implement the port.AdUseCase interface.
type AdUseCase struct {
	cfg     Config
	log     *slog.Logger
	store   port.CampaignStore
	ledger  port.RewardLedger
	events  port.EventRepository
	gateway port.SettlementGateway
	queue   port.TaskQueue

	ids      *snowflake.Node
	memos    *memoEncoder
	identity *identity.Deriver
	validate *validator.Validate
	budget   *budgetGuard
	random   func() matching.Source
	now      func() time.Time
}

// NewAdUseCase wires the use case. It fails on an invalid node id or memo
// salt.
func NewAdUseCase(cfg Config, deps Deps) (*AdUseCase, error) {
	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node: %w", err)
	}
	memos, err := newMemoEncoder(cfg.MemoSalt)
	if err != nil {
		return nil, fmt.Errorf("memo encoder: %w", err)
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	if err = identity.RegisterValidation(v); err != nil {
		return nil, fmt.Errorf("register validation: %w", err)
	}
	if cfg.WeightScale <= 0 {
		cfg.WeightScale = matching.DefaultScale
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	u := &AdUseCase{
		cfg:      cfg,
		log:      deps.Log,
		store:    deps.Store,
		ledger:   deps.Ledger,
		events:   deps.Events,
		gateway:  deps.Gateway,
		queue:    deps.Queue,
		ids:      node,
		memos:    memos,
		identity: identity.NewDeriver(cfg.FingerprintSalt),
		validate: v,
		budget:   newBudgetGuard(deps.Store),
		random:   deps.Random,
		now:      deps.Now,
	}
	if u.log == nil {
		u.log = slog.Default()
	}
	if u.random == nil {
		u.random = func() matching.Source {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u, nil
}

// RequestAd selects a campaign for the site and tags. Anything that
// prevents serving, from an unknown site to a failing store, results in
// no ad rather than an error; only malformed requests, including a wallet
// the click endpoint would refuse, are rejected.
func (u *AdUseCase) RequestAd(ctx context.Context, req port.AdRequest) (*port.AdResponse, error) {
	if err := u.check(req); err != nil {
		return nil, err
	}
	if _, err := u.identity.Resolve(req.Viewer); err != nil {
		return nil, err
	}

	site, err := u.store.GetSite(ctx, req.SiteID)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			u.log.Warn("ad request: load site", slog.String("site_id", req.SiteID), slog.Any("error", err))
		}
		return nil, nil
	}
	if site.Disabled {
		return nil, nil
	}

	campaigns, err := u.store.ActiveCampaigns(ctx)
	if err != nil {
		u.log.Warn("ad request: load campaigns", slog.Any("error", err))
		return nil, nil
	}
	chosen := matching.Select(campaigns, req.Tags, u.random(), u.cfg.WeightScale)
	if chosen == nil {
		return nil, nil
	}

	resp := &port.AdResponse{
		CampaignID:     chosen.ID,
		AdvertiserName: chosen.AdvertiserName,
		ImageURL:       chosen.ImageURL,
		TargetURL:      chosen.TargetURL,
		ClickURL:       u.clickURL(chosen.ID, site.ID, req.Viewer.Wallet),
		ImpressionURL:  u.cfg.APIBaseURL + "/api/v1/impression",
		Tags:           chosen.Tags,
	}

	if req.RecordImpression {
		imp, err := u.RegisterImpression(ctx, port.ImpressionRequest{
			CampaignID: chosen.ID,
			SiteID:     site.ID,
			Viewer:     req.Viewer,
		})
		if err != nil {
			u.log.Warn("ad request: record impression",
				slog.String("campaign_id", chosen.ID), slog.Any("error", err))
		}
		resp.Impression = imp
	}
	return resp, nil
}

func (u *AdUseCase) clickURL(campaignID, siteID, wallet string) string {
	q := url.Values{}
	q.Set("campaignId", campaignID)
	q.Set("siteId", siteID)
	if w := strings.TrimSpace(wallet); w != "" {
		q.Set("wallet", w)
	}
	return u.cfg.APIBaseURL + "/api/v1/click?" + q.Encode()
}

func (u *AdUseCase) cooldownFor(id domain.Identity) time.Duration {
	if id.Anonymous() {
		return u.cfg.AnonymousCooldown
	}
	return u.cfg.WalletCooldown
}

// finalize writes the terminal status of an event with a context that
// survives the task deadline.
func (u *AdUseCase) finalize(ctx context.Context, ev domain.Event, out domain.Outcome) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	out.SettledAt = u.now()
	if err := u.events.FinalizeEvent(ctx, ev.Kind, ev.ID, out); err != nil {
		return fmt.Errorf("finalize %s %d as %s: %w", ev.Kind, ev.ID, out.Status, err)
	}
	return nil
}

// revert undoes a ledger grant after a failed settlement.
func (u *AdUseCase) revert(ctx context.Context, g domain.RewardGrant, entry domain.LedgerEntry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if err := u.ledger.Revert(ctx, g, entry); err != nil {
		u.log.Error("revert reward grant",
			slog.String("identity", g.Identity.Short()),
			slog.String("site_id", g.SiteID),
			slog.String("kind", string(g.Kind)),
			slog.Any("error", err))
	}
}
