package httpadapter

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

type rewardStatsView struct {
	TotalImpressions int64           `json:"totalImpressions"`
	TotalClicks      int64           `json:"totalClicks"`
	TotalEarned      decimal.Decimal `json:"totalEarned"`
	LastCampaignID   string          `json:"lastCampaignId,omitempty"`
	LastRewardAt     *time.Time      `json:"lastRewardAt,omitempty"`
}

type rewardStatusView struct {
	Eligible          bool             `json:"eligible"`
	IdentityKind      string           `json:"identityKind"`
	Identity          string           `json:"identity"`
	CooldownSeconds   int64            `json:"cooldownSeconds"`
	CooldownRemaining int64            `json:"cooldownRemainingSeconds"`
	Stats             *rewardStatsView `json:"stats,omitempty"`
	Rates             struct {
		ImpressionReward      decimal.Decimal `json:"impressionReward"`
		ClickRewardPercentage decimal.Decimal `json:"clickRewardPercentage"`
	} `json:"rates"`
}

// handleRewardStatus tells a widget whether its viewer would be rewarded
// on the site right now. Anonymous viewers are identified by a
// fingerprint, of which only a prefix is echoed back.
func (h *Handler) handleRewardStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	siteID := strings.TrimSpace(q.Get("siteId"))
	if siteID == "" {
		h.badRequest(w, "siteId is required")
		return
	}

	st, err := h.svc.RewardStatus(r.Context(), port.RewardStatusRequest{
		SiteID: siteID,
		Viewer: viewer(r, strings.TrimSpace(q.Get("wallet"))),
	})
	if err != nil {
		h.fail(w, r, "reward status", err)
		return
	}

	v := rewardStatusView{
		Eligible:          st.Eligible,
		IdentityKind:      string(st.Identity.Kind),
		Identity:          st.Identity.Value,
		CooldownSeconds:   int64(st.Cooldown.Seconds()),
		CooldownRemaining: int64(st.CooldownRemaining.Seconds()),
	}
	if st.Identity.Anonymous() {
		v.Identity = st.Identity.Short()
	}
	if st.Stats != nil {
		v.Stats = &rewardStatsView{
			TotalImpressions: st.Stats.TotalImpressions,
			TotalClicks:      st.Stats.TotalClicks,
			TotalEarned:      st.Stats.TotalEarned,
			LastCampaignID:   st.Stats.LastCampaignID,
			LastRewardAt:     st.Stats.LastRewardAt,
		}
	}
	v.Rates.ImpressionReward = st.Rates.ImpressionReward
	v.Rates.ClickRewardPercentage = st.Rates.ClickRewardPercentage
	h.write(w, http.StatusOK, v)
}
