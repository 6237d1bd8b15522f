package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stellar-ads/internal/core/domain"
	"stellar-ads/internal/core/port"
	"stellar-ads/internal/core/port/mocks"
)

const wallet = "GBR2T2FIYLMNVYM477DAN5OHRDF4MOONPGKLNU4JIP3MWMQ4VR26PVZW"

func newTestServer(t *testing.T) (*mocks.MockAdUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockAdUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, Options{}).Router()
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleAdRequest(t *testing.T) {
	t.Run("served", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RequestAd(mock.Anything, mock.MatchedBy(func(req port.AdRequest) bool {
			return req.SiteID == "site_1" &&
				assert.ObjectsAreEqual([]string{"crypto", "cloud"}, req.Tags) &&
				req.Viewer.Wallet == wallet &&
				req.Viewer.IPAddress == "203.0.113.7" &&
				req.Viewer.UserAgent == "Mozilla/5.0" &&
				req.RecordImpression
		})).Return(&port.AdResponse{
			CampaignID:     "C1",
			AdvertiserName: "Acme",
			ImageURL:       "https://img.example.com/1.png",
			ClickURL:       "http://api.local/api/v1/click?campaignId=C1&siteId=site_1",
			Tags:           []string{"crypto"},
			Impression: &port.ImpressionResult{
				Registered: true,
				EventID:    42,
				Eligible:   true,
				Reward:     decimal.RequireFromString("0.001"),
				Status:     domain.StatusPending,
			},
		}, nil)

		rec := do(h, http.MethodGet, "/api/v1/ad?siteId=site_1&tags=crypto,+cloud,,&wallet="+wallet+"&impression=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, true, out["success"])
		ad := out["ad"].(map[string]any)
		assert.Equal(t, "C1", ad["campaignId"])
		assert.NotContains(t, ad, "targetUrl")
		imp := out["impression"].(map[string]any)
		assert.Equal(t, "42", imp["eventId"])
		assert.Equal(t, "0.001", imp["reward"])
		assert.Equal(t, "pending", imp["status"])
	})

	t.Run("no ad", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RequestAd(mock.Anything, mock.Anything).Return(nil, nil)

		rec := do(h, http.MethodGet, "/api/v1/ad?siteId=site_1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, false, out["success"])
		assert.NotContains(t, out, "ad")
	})

	t.Run("missing site", func(t *testing.T) {
		_, h := newTestServer(t)
		rec := do(h, http.MethodGet, "/api/v1/ad?tags=x", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad impression flag", func(t *testing.T) {
		_, h := newTestServer(t)
		rec := do(h, http.MethodGet, "/api/v1/ad?siteId=site_1&impression=maybe", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RequestAd(mock.Anything, mock.Anything).
			Return(nil, port.NewValidationError("wallet", "must be a valid Stellar account address"))

		rec := do(h, http.MethodGet, "/api/v1/ad?siteId=site_1&wallet=nope", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		out := decode(t, rec)
		assert.Contains(t, out["fields"], "wallet")
	})
}

func TestHandleAdClick(t *testing.T) {
	t.Run("redirects to target", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RegisterClick(mock.Anything, mock.MatchedBy(func(req port.ClickRequest) bool {
			return req.CampaignID == "C1" && req.SiteID == "site_1" && req.Viewer.Wallet == wallet
		})).Return("https://advertiser.example.com", nil)

		rec := do(h, http.MethodGet, "/api/v1/click?campaignId=C1&siteId=site_1&wallet="+wallet, "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://advertiser.example.com", rec.Header().Get("Location"))
	})

	t.Run("fallback on unknown campaign", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RegisterClick(mock.Anything, mock.Anything).
			Return("https://fallback.example.com", fmt.Errorf("campaign %q: %w", "C9", port.ErrNotFound))

		rec := do(h, http.MethodGet, "/api/v1/click?campaignId=C9&siteId=site_1", "")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://fallback.example.com", rec.Header().Get("Location"))
	})

	t.Run("missing params", func(t *testing.T) {
		_, h := newTestServer(t)
		rec := do(h, http.MethodGet, "/api/v1/click?campaignId=C1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RegisterClick(mock.Anything, mock.Anything).
			Return("", port.NewValidationError("wallet", "must be a valid Stellar account address"))

		rec := do(h, http.MethodGet, "/api/v1/click?campaignId=C1&siteId=site_1&wallet=bad", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleImpression(t *testing.T) {
	t.Run("cooldown", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RegisterImpression(mock.Anything, port.ImpressionRequest{
			CampaignID: "C1",
			SiteID:     "site_1",
			Viewer:     domain.Viewer{Wallet: wallet, IPAddress: "203.0.113.7", UserAgent: "Mozilla/5.0"},
		}).Return(&port.ImpressionResult{
			Registered:        true,
			EventID:           7,
			Reward:            decimal.Zero,
			Status:            domain.StatusSkipped,
			CooldownRemaining: 9 * time.Minute,
		}, nil)

		rec := do(h, http.MethodPost, "/api/v1/impression",
			`{"campaignId":"C1","siteId":"site_1","wallet":"`+wallet+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, true, out["registered"])
		assert.Equal(t, false, out["eligible"])
		assert.Equal(t, "skipped", out["status"])
		assert.EqualValues(t, 540, out["cooldownRemainingSeconds"])
	})

	t.Run("unknown field", func(t *testing.T) {
		_, h := newTestServer(t)
		rec := do(h, http.MethodPost, "/api/v1/impression", `{"campaignId":"C1","extra":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().RegisterImpression(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("campaign: %w", port.ErrNotFound))

		rec := do(h, http.MethodPost, "/api/v1/impression", `{"campaignId":"C9","siteId":"site_1"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleRewardStatus(t *testing.T) {
	svc, h := newTestServer(t)
	last := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().RewardStatus(mock.Anything, mock.Anything).Return(&port.RewardStatus{
		Identity:          domain.Identity{Value: "63e60afc222553ee7d2d", Kind: domain.IdentityFingerprint},
		Cooldown:          6 * time.Hour,
		CooldownRemaining: time.Hour,
		Stats: &domain.LedgerEntry{
			TotalImpressions: 3,
			TotalEarned:      decimal.Zero,
			LastRewardAt:     &last,
		},
		Rates: port.RewardRates{
			ImpressionReward:      decimal.RequireFromString("0.001"),
			ClickRewardPercentage: decimal.NewFromInt(10),
		},
	}, nil)

	rec := do(h, http.MethodGet, "/api/v1/rewards?siteId=site_1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, false, out["eligible"])
	assert.Equal(t, "fingerprint", out["identityKind"])
	assert.Equal(t, "63e60afc", out["identity"])
	assert.EqualValues(t, 21600, out["cooldownSeconds"])
	rates := out["rates"].(map[string]any)
	assert.Equal(t, "10", rates["clickRewardPercentage"])
	stats := out["stats"].(map[string]any)
	assert.EqualValues(t, 3, stats["totalImpressions"])
}

func TestHandleStatsOverview(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		svc, h := newTestServer(t)
		from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.From.Equal(from) && req.To.IsZero() &&
				req.CampaignID != nil && *req.CampaignID == "C1" && req.SiteID == nil
		})).Return(&port.StatsResp{
			Impressions:      10,
			Clicks:           2,
			Spend:            decimal.RequireFromString("0.4"),
			ClickThroughRate: 0.2,
			AvgCostPerClick:  decimal.RequireFromString("0.2"),
		}, nil)

		rec := do(h, http.MethodGet, "/api/v1/stats/overview?from=2024-05-01T00:00:00Z&campaignId=C1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.EqualValues(t, 10, out["impressions"])
		assert.Equal(t, "0.4", out["spend"])
		assert.InDelta(t, 0.2, out["clickThroughRate"], 1e-9)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, h := newTestServer(t)
		rec := do(h, http.MethodGet, "/api/v1/stats/overview?to=yesterday", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store down", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().GetStats(mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("get stats: %w", port.ErrStoreUnavailable))

		rec := do(h, http.MethodGet, "/api/v1/stats/overview", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleSites(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().CreateSite(mock.Anything, port.CreateSiteRequest{
			Name:          "Blog",
			Domain:        "blog.example.com",
			PayoutAddress: wallet,
			RevenueShare:  decimal.RequireFromString("0.7"),
		}).Return(domain.Site{ID: "site_abc", Name: "Blog", Domain: "blog.example.com",
			PayoutAddress: wallet, RevenueShare: decimal.RequireFromString("0.7")}, nil)

		rec := do(h, http.MethodPost, "/api/v1/sites",
			`{"name":"Blog","domain":"blog.example.com","payoutAddress":"`+wallet+`","revenueShare":"0.7"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, "site_abc", out["id"])
		assert.Equal(t, "0.7", out["revenueShare"])
	})

	t.Run("duplicate domain", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().CreateSite(mock.Anything, mock.Anything).
			Return(domain.Site{}, fmt.Errorf("create site: %w", port.ErrDuplicateDomain))

		rec := do(h, http.MethodPost, "/api/v1/sites",
			`{"name":"Blog","domain":"blog.example.com","payoutAddress":"`+wallet+`","revenueShare":0.7}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().CreateSite(mock.Anything, mock.Anything).
			Return(domain.Site{}, port.NewValidationError("payoutAddress", "must be a valid Stellar account address"))

		rec := do(h, http.MethodPost, "/api/v1/sites", `{"name":"Blog","domain":"blog.example.com","payoutAddress":"x"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, false, out["success"])
		assert.Contains(t, out["fields"], "payoutAddress")
	})

	t.Run("update", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().UpdateSite(mock.Anything, "site_1", mock.MatchedBy(func(u domain.SiteUpdate) bool {
			return u.Disabled != nil && *u.Disabled && u.RevenueShare == nil && u.PayoutAddress == nil
		})).Return(domain.Site{ID: "site_1", Disabled: true}, nil)

		rec := do(h, http.MethodPatch, "/api/v1/sites/site_1", `{"disabled":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decode(t, rec)["disabled"])
	})

	t.Run("update unknown", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().UpdateSite(mock.Anything, "nope", mock.Anything).
			Return(domain.Site{}, fmt.Errorf("site %q: %w", "nope", port.ErrNotFound))

		rec := do(h, http.MethodPatch, "/api/v1/sites/nope", `{"revenueShare":"0.5"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validate", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().ValidateSite(mock.Anything, "site_1").Return(&port.SiteValidation{
			Site:          domain.Site{ID: "site_1"},
			AccountExists: true,
			Balance:       decimal.RequireFromString("12.5"),
		}, nil)

		rec := do(h, http.MethodPost, "/api/v1/sites/validate", `{"siteId":"site_1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, true, out["accountExists"])
		assert.Equal(t, "12.5", out["balance"])
	})

	t.Run("list", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().ListSites(mock.Anything).Return([]domain.Site{{ID: "a"}, {ID: "b"}}, nil)

		rec := do(h, http.MethodGet, "/api/v1/sites", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Len(t, out, 2)
	})
}

func TestHandleCampaigns(t *testing.T) {
	t.Run("list shows remaining", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{{
			ID:           "C1",
			Budget:       decimal.NewFromInt(100),
			Spent:        decimal.RequireFromString("0.2"),
			CostPerClick: decimal.RequireFromString("0.2"),
			Active:       true,
		}}, nil)

		rec := do(h, http.MethodGet, "/api/v1/campaigns", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "99.8", out[0]["remaining"])
	})

	t.Run("create", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(req port.CreateCampaignRequest) bool {
			return req.AdvertiserName == "Acme" && req.Budget.Equal(decimal.NewFromInt(50)) &&
				req.CostPerClick.Equal(decimal.RequireFromString("0.25"))
		})).Return(domain.Campaign{ID: "campaign_1", AdvertiserName: "Acme", Active: true}, nil)

		rec := do(h, http.MethodPost, "/api/v1/campaigns",
			`{"advertiserName":"Acme","advertiserAddress":"`+wallet+`","imageUrl":"https://i.example.com/a.png",`+
				`"targetUrl":"https://acme.example.com","budget":"50","costPerClick":"0.25","tags":["cloud"]}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "campaign_1", decode(t, rec)["id"])
	})
}

func TestHandleSettlement(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().LookupSettlement(mock.Anything, "clk-Xk2q9mLpR4a").Return(domain.Event{
			ID:            7,
			Kind:          domain.KindClick,
			CampaignID:    "C1",
			SiteID:        "site_1",
			Identity:      domain.Identity{Value: wallet, Kind: domain.IdentityWallet},
			Cost:          decimal.RequireFromString("0.2"),
			RewardAmount:  decimal.RequireFromString("0.02"),
			Status:        domain.StatusCompleted,
			SettlementRef: "tx-1",
		}, nil)

		rec := do(h, http.MethodGet, "/api/v1/settlements/clk-Xk2q9mLpR4a", "")
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode(t, rec)
		assert.Equal(t, "7", out["eventId"])
		assert.Equal(t, "click", out["kind"])
		assert.Equal(t, "tx-1", out["settlementRef"])
		assert.NotContains(t, rec.Body.String(), wallet)
	})

	t.Run("unknown memo", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().LookupSettlement(mock.Anything, "imp-zzzzzzzz").Return(domain.Event{}, port.ErrNotFound)

		rec := do(h, http.MethodGet, "/api/v1/settlements/imp-zzzzzzzz", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed memo", func(t *testing.T) {
		svc, h := newTestServer(t)
		svc.EXPECT().LookupSettlement(mock.Anything, "bogus").
			Return(domain.Event{}, port.NewValidationError("memo", "invalid settlement memo"))

		rec := do(h, http.MethodGet, "/api/v1/settlements/bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := do(h, http.MethodGet, "/api/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
