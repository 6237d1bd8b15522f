package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/db"
)

// testAddrEnv names a disposable database the repository tests may
// migrate and write to. The tests are skipped when it is unset.
const testAddrEnv = "STELLAR_ADS_TEST_PSQL_ADDRESS"

const testWallet = "GBR2T2FIYLMNVYM477DAN5OHRDF4MOONPGKLNU4JIP3MWMQ4VR26PVZW"

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv(testAddrEnv)
	if addr == "" {
		t.Skipf("%s not set", testAddrEnv)
	}
	_, err := db.Migrate(addr)
	require.NoError(t, err)

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// seedRows creates a fresh site and campaign so tests never share ledger
// rows.
func seedRows(t *testing.T, repo *CampaignRepository, budget string) (domain.Site, domain.Campaign) {
	t.Helper()
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	site, err := repo.CreateSite(ctx, domain.Site{
		ID: "site_" + suffix, Name: "Test", Domain: suffix + ".example.com",
		PayoutAddress: testWallet, RevenueShare: decimal.RequireFromString("0.7"),
	})
	require.NoError(t, err)
	c, err := repo.CreateCampaign(ctx, domain.Campaign{
		ID: "campaign_" + suffix, AdvertiserName: "Test", AdvertiserAddress: testWallet,
		ImageURL: "https://img.example.com/a.png", TargetURL: "https://example.com",
		Budget: decimal.RequireFromString(budget), CostPerClick: decimal.RequireFromString("0.1"),
		Active: true,
	})
	require.NoError(t, err)
	return site, c
}

func TestIncrementSpentRejectsNonPositive(t *testing.T) {
	repo := NewCampaignRepository(nil)
	for _, amount := range []string{"0", "-0.1"} {
		_, err := repo.IncrementSpent(context.Background(), "C1", decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, port.ErrValidation, amount)
	}
}

func TestIncrementSpentConcurrent(t *testing.T) {
	pool := testPool(t)
	repo := NewCampaignRepository(pool)
	_, c := seedRows(t, repo, "10")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementSpent(ctx, c.ID, decimal.RequireFromString("0.1"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Spent.Equal(decimal.RequireFromString("2")), "spent %s", got.Spent)

	_, err = repo.IncrementSpent(ctx, "missing", decimal.RequireFromString("0.1"))
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestGrantConcurrentOnlyOneWins(t *testing.T) {
	pool := testPool(t)
	site, c := seedRows(t, NewCampaignRepository(pool), "10")
	ledger := NewLedgerRepository(pool)
	g := domain.RewardGrant{
		Identity:   domain.Identity{Value: testWallet, Kind: domain.IdentityWallet},
		SiteID:     site.ID,
		CampaignID: c.ID,
		Kind:       domain.KindImpression,
		Amount:     decimal.RequireFromString("0.001"),
		Cooldown:   10 * time.Minute,
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		granted  int
		cooldown int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Grant(context.Background(), g)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				granted++
			case errors.Is(err, port.ErrCooldownActive):
				cooldown++
			default:
				t.Errorf("grant: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted)
	assert.Equal(t, 9, cooldown)

	entry, err := ledger.Stats(context.Background(), testWallet, site.ID)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.EqualValues(t, 1, entry.TotalImpressions)
}

func TestRevertRestoresCooldownTimestamp(t *testing.T) {
	pool := testPool(t)
	site, c := seedRows(t, NewCampaignRepository(pool), "10")
	ledger := NewLedgerRepository(pool)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }
	g := domain.RewardGrant{
		Identity:   domain.Identity{Value: testWallet, Kind: domain.IdentityWallet},
		SiteID:     site.ID,
		CampaignID: c.ID,
		Kind:       domain.KindClick,
		Amount:     decimal.RequireFromString("0.02"),
		Cooldown:   10 * time.Minute,
	}

	first, err := ledger.Grant(ctx, g)
	require.NoError(t, err)
	assert.Nil(t, first.PreviousRewardAt)

	now = now.Add(15 * time.Minute)
	second, err := ledger.Grant(ctx, g)
	require.NoError(t, err)

	// a stale revert must not move the timestamp a later grant set
	require.NoError(t, ledger.Revert(ctx, g, first))
	entry, err := ledger.Stats(ctx, testWallet, site.ID)
	require.NoError(t, err)
	assert.True(t, entry.LastRewardAt.Equal(*second.LastRewardAt))
	assert.EqualValues(t, 1, entry.TotalClicks)

	require.NoError(t, ledger.Revert(ctx, g, second))
	entry, err = ledger.Stats(ctx, testWallet, site.ID)
	require.NoError(t, err)
	assert.True(t, entry.LastRewardAt.Equal(*second.PreviousRewardAt))
	assert.Zero(t, entry.TotalClicks)
	assert.True(t, entry.TotalEarned.IsZero())

	// counters never go negative
	require.NoError(t, ledger.Revert(ctx, g, second))
	entry, err = ledger.Stats(ctx, testWallet, site.ID)
	require.NoError(t, err)
	assert.Zero(t, entry.TotalClicks)
	assert.True(t, entry.TotalEarned.IsZero())

	g.SiteID = "missing"
	assert.ErrorIs(t, ledger.Revert(ctx, g, second), port.ErrNotFound)
}
