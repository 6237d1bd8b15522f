package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stellar-ads/internal/adapter/memory"
	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/matching"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/core/port/mocks"
)

const (
	viewerWallet    = "GBR2T2FIYLMNVYM477DAN5OHRDF4MOONPGKLNU4JIP3MWMQ4VR26PVZW"
	otherWallet     = "GBQXXKDAGFBXFE3K6RBR7FJANYL3BDSOVSD44YQYCRUWLNSI2WX3P3MT"
	publisherWallet = "GBHQHIDAW7VQGKLS3SZSP4WJRGYU2XTTYNNT2WJIU34HLSRZYFM3U7OK"
	advertiser      = "GBUWQOMECEKLVFQSC7QWVLGQ2XL4U2XHUI3VMA5BNSYIIU5LOK2SC5H7"
	fallbackURL     = "https://ads.example.com/"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// inlineQueue runs tasks synchronously on Submit.
type inlineQueue struct {
	mu   sync.Mutex
	errs []error
}

func (q *inlineQueue) Submit(_ string, task port.Task) error {
	if err := task(context.Background()); err != nil {
		q.mu.Lock()
		q.errs = append(q.errs, err)
		q.mu.Unlock()
	}
	return nil
}

type fixture struct {
	uc    *AdUseCase
	store *memory.Store
	clock *clock
	queue *inlineQueue
}

type option func(*Deps)

func withLedger(l port.RewardLedger) option { return func(d *Deps) { d.Ledger = l } }
func withStore(s port.CampaignStore) option  { return func(d *Deps) { d.Store = s } }
func withQueue(q port.TaskQueue) option      { return func(d *Deps) { d.Queue = q } }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "want %s, got %s", want, got)
}

func newFixture(t *testing.T, gw port.SettlementGateway, opts ...option) *fixture {
	t.Helper()
	clk := &clock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	store := memory.New(memory.WithClock(clk.Now))
	queue := &inlineQueue{}

	ctx := context.Background()
	_, err := store.CreateSite(ctx, domain.Site{
		ID: "site_1", Name: "Blog", Domain: "blog.example.com",
		PayoutAddress: publisherWallet, RevenueShare: d("0.7"),
	})
	require.NoError(t, err)
	_, err = store.CreateSite(ctx, domain.Site{
		ID: "site_off", Name: "Off", Domain: "off.example.com",
		PayoutAddress: publisherWallet, RevenueShare: d("0.7"), Disabled: true,
	})
	require.NoError(t, err)
	_, err = store.CreateCampaign(ctx, domain.Campaign{
		ID: "C1", AdvertiserName: "Tech", AdvertiserAddress: advertiser,
		ImageURL: "https://img.example.com/c1.png", TargetURL: "https://tech.example.com",
		Budget: d("100"), Spent: decimal.Zero, CostPerClick: d("0.2"), Active: true,
		Tags: []string{"tecnologia", "programacao"},
	})
	require.NoError(t, err)

	deps := Deps{
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:   store,
		Ledger:  store,
		Events:  store,
		Gateway: gw,
		Queue:   queue,
		Random:  func() matching.Source { return rand.New(rand.NewPCG(1, 2)) },
		Now:     clk.Now,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	uc, err := NewAdUseCase(Config{
		APIBaseURL:          "https://ads.example.com/",
		FallbackRedirectURL: fallbackURL,
		ImpressionReward:    d("0.001"),
		ClickRewardFraction: d("0.1"),
		WalletCooldown:      10 * time.Minute,
		AnonymousCooldown:   6 * time.Hour,
		WeightScale:         10,
		FingerprintSalt:     "salt",
		MemoSalt:            "memo",
		NodeID:              1,
	}, deps)
	require.NoError(t, err)
	return &fixture{uc: uc, store: store, clock: clk, queue: queue}
}

func paid(ref string) func(context.Context, domain.Instruction) (domain.Receipt, error) {
	return func(context.Context, domain.Instruction) (domain.Receipt, error) {
		return domain.Receipt{Reference: ref}, nil
	}
}

func TestRequestAd(t *testing.T) {
	f := newFixture(t, mocks.NewMockSettlementGateway(t))
	ctx := context.Background()

	resp, err := f.uc.RequestAd(ctx, port.AdRequest{SiteID: "site_1", Tags: []string{"programacao"},
		Viewer: domain.Viewer{Wallet: viewerWallet}})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "C1", resp.CampaignID)
	assert.Equal(t, "https://tech.example.com", resp.TargetURL)
	assert.Equal(t, "https://ads.example.com/api/v1/click?campaignId=C1&siteId=site_1&wallet="+viewerWallet, resp.ClickURL)
	assert.Equal(t, "https://ads.example.com/api/v1/impression", resp.ImpressionURL)
	assert.Nil(t, resp.Impression)

	for _, siteID := range []string{"unknown", "site_off"} {
		resp, err = f.uc.RequestAd(ctx, port.AdRequest{SiteID: siteID})
		require.NoError(t, err)
		assert.Nil(t, resp, siteID)
	}

	_, err = f.uc.RequestAd(ctx, port.AdRequest{})
	assert.ErrorIs(t, err, port.ErrValidation)

	tooMany := make([]string, 21)
	for i := range tooMany {
		tooMany[i] = "programacao"
	}
	_, err = f.uc.RequestAd(ctx, port.AdRequest{SiteID: "site_1", Tags: tooMany})
	assert.ErrorIs(t, err, port.ErrValidation)

	_, err = f.uc.RequestAd(ctx, port.AdRequest{SiteID: "site_1", Tags: []string{strings.Repeat("x", 51)}})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestRequestAdRejectsInvalidWallet(t *testing.T) {
	gw := mocks.NewMockSettlementGateway(t)
	gw.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(paid("tx-clk")).Once()
	f := newFixture(t, gw)
	ctx := context.Background()

	resp, err := f.uc.RequestAd(ctx, port.AdRequest{
		SiteID: "site_1", Viewer: domain.Viewer{Wallet: "nope"}, RecordImpression: true,
	})
	assert.Nil(t, resp)
	var verr *port.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "wallet")

	// the click link handed out must be one the click endpoint accepts
	resp, err = f.uc.RequestAd(ctx, port.AdRequest{SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet}})
	require.NoError(t, err)
	require.NotNil(t, resp)
	target, err := f.uc.RegisterClick(ctx, port.ClickRequest{
		CampaignID: resp.CampaignID, SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://tech.example.com", target)

	now := f.clock.Now()
	stats, err := f.uc.GetStats(ctx, port.StatsReq{From: now.Add(-time.Hour), To: now.Add(time.Hour)})
	require.NoError(t, err)
	assert.Zero(t, stats.Impressions)
	assert.EqualValues(t, 1, stats.Clicks)
}

func TestRequestAdNoEligibleCampaign(t *testing.T) {
	f := newFixture(t, mocks.NewMockSettlementGateway(t))
	ctx := context.Background()
	_, err := f.store.IncrementSpent(ctx, "C1", d("100"))
	require.NoError(t, err)

	resp, err := f.uc.RequestAd(ctx, port.AdRequest{SiteID: "site_1"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestRequestAdStoreUnavailable(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	store.EXPECT().GetSite(mock.Anything, "site_1").
		Return(domain.Site{ID: "site_1", RevenueShare: d("0.7")}, nil)
	store.EXPECT().ActiveCampaigns(mock.Anything).
		Return(nil, port.ErrStoreUnavailable)
	f := newFixture(t, mocks.NewMockSettlementGateway(t), withStore(store))

	resp, err := f.uc.RequestAd(context.Background(), port.AdRequest{SiteID: "site_1"})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestRequestAdRecordsImpression(t *testing.T) {
	gw := mocks.NewMockSettlementGateway(t)
	gw.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(paid("tx-imp")).Once()
	f := newFixture(t, gw)

	resp, err := f.uc.RequestAd(context.Background(), port.AdRequest{
		SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet}, RecordImpression: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotNil(t, resp.Impression)
	assert.True(t, resp.Impression.Eligible)
	assertAmount(t, "0.001", resp.Impression.Reward)
}

func TestRewardStatus(t *testing.T) {
	gw := mocks.NewMockSettlementGateway(t)
	gw.EXPECT().Submit(mock.Anything, mock.Anything).RunAndReturn(paid("tx-1")).Once()
	f := newFixture(t, gw)
	ctx := context.Background()
	req := port.RewardStatusRequest{SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet}}

	status, err := f.uc.RewardStatus(ctx, req)
	require.NoError(t, err)
	assert.True(t, status.Eligible)
	assert.Nil(t, status.Stats)
	assert.Equal(t, 10*time.Minute, status.Cooldown)
	assertAmount(t, "0.001", status.Rates.ImpressionReward)
	assertAmount(t, "10", status.Rates.ClickRewardPercentage)

	_, err = f.uc.RegisterImpression(ctx, port.ImpressionRequest{CampaignID: "C1", SiteID: "site_1", Viewer: req.Viewer})
	require.NoError(t, err)
	f.clock.Advance(4 * time.Minute)

	status, err = f.uc.RewardStatus(ctx, req)
	require.NoError(t, err)
	assert.False(t, status.Eligible)
	assert.Equal(t, 6*time.Minute, status.CooldownRemaining)
	require.NotNil(t, status.Stats)
	assert.EqualValues(t, 1, status.Stats.TotalImpressions)

	anon, err := f.uc.RewardStatus(ctx, port.RewardStatusRequest{SiteID: "site_1",
		Viewer: domain.Viewer{IPAddress: "198.51.100.4", UserAgent: "curl"}})
	require.NoError(t, err)
	assert.True(t, anon.Eligible)
	assert.Equal(t, 6*time.Hour, anon.Cooldown)
	assert.Equal(t, domain.IdentityFingerprint, anon.Identity.Kind)
}

func TestRewardStatusFailsClosed(t *testing.T) {
	ledger := mocks.NewMockRewardLedger(t)
	ledger.EXPECT().CanReward(mock.Anything, mock.Anything, "site_1", 10*time.Minute).
		Return(false, port.ErrStoreUnavailable)
	f := newFixture(t, mocks.NewMockSettlementGateway(t), withLedger(ledger))

	status, err := f.uc.RewardStatus(context.Background(), port.RewardStatusRequest{
		SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet}})
	require.NoError(t, err)
	assert.False(t, status.Eligible)
	assert.Nil(t, status.Stats)
}

func TestRewardStatusAsksLedger(t *testing.T) {
	last := time.Date(2026, 3, 1, 11, 55, 0, 0, time.UTC)
	ledger := mocks.NewMockRewardLedger(t)
	ledger.EXPECT().CanReward(mock.Anything, mock.MatchedBy(func(id domain.Identity) bool {
		return id.Value == viewerWallet
	}), "site_1", 10*time.Minute).Return(false, nil).Once()
	ledger.EXPECT().Stats(mock.Anything, viewerWallet, "site_1").
		Return(&domain.LedgerEntry{TotalImpressions: 3, LastRewardAt: &last}, nil).Once()
	f := newFixture(t, mocks.NewMockSettlementGateway(t), withLedger(ledger))

	status, err := f.uc.RewardStatus(context.Background(), port.RewardStatusRequest{
		SiteID: "site_1", Viewer: domain.Viewer{Wallet: viewerWallet}})
	require.NoError(t, err)
	assert.False(t, status.Eligible)
	assert.Equal(t, 5*time.Minute, status.CooldownRemaining)
	assert.EqualValues(t, 3, status.Stats.TotalImpressions)
}

func TestGetStatsDefaultsWindow(t *testing.T) {
	f := newFixture(t, mocks.NewMockSettlementGateway(t))

	stats, err := f.uc.GetStats(context.Background(), port.StatsReq{})
	require.NoError(t, err)
	assert.Zero(t, stats.Impressions)

	_, err = f.uc.GetStats(context.Background(), port.StatsReq{From: f.clock.Now(), To: f.clock.Now()})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestSiteAdmin(t *testing.T) {
	f := newFixture(t, mocks.NewMockSettlementGateway(t))
	ctx := context.Background()

	site, err := f.uc.CreateSite(ctx, port.CreateSiteRequest{
		Name: "News", Domain: "News.Example.com", PayoutAddress: publisherWallet, RevenueShare: d("0.75"),
	})
	require.NoError(t, err)
	assert.Contains(t, site.ID, "site_")
	assert.Equal(t, "news.example.com", site.Domain)

	_, err = f.uc.CreateSite(ctx, port.CreateSiteRequest{
		Name: "Dup", Domain: "NEWS.example.com", PayoutAddress: publisherWallet, RevenueShare: d("0.5"),
	})
	assert.ErrorIs(t, err, port.ErrDuplicateDomain)

	_, err = f.uc.CreateSite(ctx, port.CreateSiteRequest{
		Name: "Bad", Domain: "bad.example.com", PayoutAddress: "GNOPE", RevenueShare: d("0.5"),
	})
	var verr *port.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "payoutAddress")

	_, err = f.uc.CreateSite(ctx, port.CreateSiteRequest{
		Name: "Greedy", Domain: "greedy.example.com", PayoutAddress: publisherWallet, RevenueShare: d("1.5"),
	})
	assert.ErrorIs(t, err, port.ErrValidation)

	share := d("0.8")
	updated, err := f.uc.UpdateSite(ctx, site.ID, domain.SiteUpdate{RevenueShare: &share})
	require.NoError(t, err)
	assertAmount(t, "0.8", updated.RevenueShare)

	_, err = f.uc.UpdateSite(ctx, site.ID, domain.SiteUpdate{})
	assert.ErrorIs(t, err, port.ErrValidation)

	sites, err := f.uc.ListSites(ctx)
	require.NoError(t, err)
	assert.Len(t, sites, 3)
}

func TestValidateSite(t *testing.T) {
	gw := mocks.NewMockSettlementGateway(t)
	gw.EXPECT().AccountBalance(mock.Anything, publisherWallet).Return(decimal.Zero, port.ErrAccountNotFound).Once()
	gw.EXPECT().AccountBalance(mock.Anything, publisherWallet).Return(d("42.5"), nil).Once()
	f := newFixture(t, gw)
	ctx := context.Background()

	res, err := f.uc.ValidateSite(ctx, "site_1")
	require.NoError(t, err)
	assert.False(t, res.AccountExists)

	res, err = f.uc.ValidateSite(ctx, "site_1")
	require.NoError(t, err)
	assert.True(t, res.AccountExists)
	assertAmount(t, "42.5", res.Balance)

	_, err = f.uc.ValidateSite(ctx, "missing")
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t, mocks.NewMockSettlementGateway(t))
	ctx := context.Background()
	req := port.CreateCampaignRequest{
		AdvertiserName: "Cloud", AdvertiserAddress: advertiser,
		ImageURL: "https://img.example.com/cloud.png", TargetURL: "https://cloud.example.com",
		Budget: d("400"), CostPerClick: d("0.3"), Tags: []string{" Cloud ", "Hosting"},
	}

	c, err := f.uc.CreateCampaign(ctx, req)
	require.NoError(t, err)
	assert.True(t, c.Active)
	assert.Equal(t, []string{"cloud", "hosting"}, c.Tags)
	assertAmount(t, "0", c.Spent)

	campaigns, err := f.uc.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 2)

	bad := req
	bad.CostPerClick = d("0.00000001")
	_, err = f.uc.CreateCampaign(ctx, bad)
	assert.ErrorIs(t, err, port.ErrValidation)

	bad = req
	bad.Budget = decimal.Zero
	_, err = f.uc.CreateCampaign(ctx, bad)
	assert.ErrorIs(t, err, port.ErrValidation)

	bad = req
	bad.TargetURL = "not a url"
	_, err = f.uc.CreateCampaign(ctx, bad)
	assert.ErrorIs(t, err, port.ErrValidation)
}
