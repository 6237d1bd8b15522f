package httpadapter

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

type statsView struct {
	Impressions      int64           `json:"impressions"`
	Clicks           int64           `json:"clicks"`
	RewardedEvents   int64           `json:"rewardedEvents"`
	Spend            decimal.Decimal `json:"spend"`
	Rewards          decimal.Decimal `json:"rewards"`
	ClickThroughRate float64         `json:"clickThroughRate"`
	AvgCostPerClick  decimal.Decimal `json:"avgCostPerClick"`
}

// handleStatsOverview returns aggregated statistics over a period. It
// accepts optional `from`, `to` (RFC3339 timestamps), `campaignId` and
// `siteId` query parameters. Without a period the last 24 hours are
// reported. Invalid parameters result in HTTP 400.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.badRequest(w, "invalid 'from' timestamp")
			return
		}
	}
	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.badRequest(w, "invalid 'to' timestamp")
			return
		}
	}
	if cid := q.Get("campaignId"); cid != "" {
		req.CampaignID = &cid
	}
	if sid := q.Get("siteId"); sid != "" {
		req.SiteID = &sid
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.fail(w, r, "stats", err)
		return
	}
	h.write(w, http.StatusOK, statsView{
		Impressions:      stats.Impressions,
		Clicks:           stats.Clicks,
		RewardedEvents:   stats.RewardedEvents,
		Spend:            stats.Spend,
		Rewards:          stats.Rewards,
		ClickThroughRate: stats.ClickThroughRate,
		AvgCostPerClick:  stats.AvgCostPerClick,
	})
}
