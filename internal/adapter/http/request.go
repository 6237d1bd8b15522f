package httpadapter

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"stellar-ads/internal/core/port"
)

type adView struct {
	CampaignID     string   `json:"campaignId"`
	AdvertiserName string   `json:"advertiserName"`
	ImageURL       string   `json:"imageUrl"`
	ClickURL       string   `json:"clickUrl"`
	ImpressionURL  string   `json:"impressionUrl"`
	Tags           []string `json:"tags"`
}

type adResponse struct {
	Success    bool            `json:"success"`
	Ad         *adView         `json:"ad,omitempty"`
	Impression *impressionView `json:"impression,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type impressionView struct {
	Registered        bool            `json:"registered"`
	EventID           string          `json:"eventId,omitempty"`
	Eligible          bool            `json:"eligible"`
	Reward            decimal.Decimal `json:"reward"`
	Status            string          `json:"status,omitempty"`
	CooldownRemaining int64           `json:"cooldownRemainingSeconds"`
}

func newImpressionView(res *port.ImpressionResult) *impressionView {
	if res == nil {
		return nil
	}
	v := &impressionView{
		Registered:        res.Registered,
		Eligible:          res.Eligible,
		Reward:            res.Reward,
		Status:            string(res.Status),
		CooldownRemaining: int64(res.CooldownRemaining.Seconds()),
	}
	if res.EventID != 0 {
		v.EventID = res.EventID.String()
	}
	return v
}

// handleAdRequest selects an ad for a site. Query parameters: siteId
// (required), tags (comma separated), wallet and impression, which
// records the view in the same round trip when true. When nothing can be
// served it answers 200 with success=false so widgets can hide the slot.
func (h *Handler) handleAdRequest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	siteID := strings.TrimSpace(q.Get("siteId"))
	if siteID == "" {
		h.badRequest(w, "siteId is required")
		return
	}
	var record bool
	if raw := q.Get("impression"); raw != "" {
		var err error
		if record, err = strconv.ParseBool(raw); err != nil {
			h.badRequest(w, "invalid 'impression' flag")
			return
		}
	}

	wallet := strings.TrimSpace(q.Get("wallet"))
	resp, err := h.svc.RequestAd(r.Context(), port.AdRequest{
		SiteID:           siteID,
		Tags:             splitTags(q.Get("tags")),
		Viewer:           viewer(r, wallet),
		RecordImpression: record,
	})
	if err != nil {
		h.fail(w, r, "request ad", err)
		return
	}
	if resp == nil {
		h.write(w, http.StatusOK, adResponse{Message: "no ad available"})
		return
	}
	h.write(w, http.StatusOK, adResponse{
		Success: true,
		Ad: &adView{
			CampaignID:     resp.CampaignID,
			AdvertiserName: resp.AdvertiserName,
			ImageURL:       resp.ImageURL,
			ClickURL:       resp.ClickURL,
			ImpressionURL:  resp.ImpressionURL,
			Tags:           resp.Tags,
		},
		Impression: newImpressionView(resp.Impression),
	})
}

type impressionBody struct {
	CampaignID string `json:"campaignId"`
	SiteID     string `json:"siteId"`
	Wallet     string `json:"wallet"`
}

// handleImpression records that an ad was shown and reports the reward
// decision for the viewer.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	var body impressionBody
	if err := readJSON(w, r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	res, err := h.svc.RegisterImpression(r.Context(), port.ImpressionRequest{
		CampaignID: strings.TrimSpace(body.CampaignID),
		SiteID:     strings.TrimSpace(body.SiteID),
		Viewer:     viewer(r, strings.TrimSpace(body.Wallet)),
	})
	if err != nil {
		h.fail(w, r, "register impression", err)
		return
	}
	h.write(w, http.StatusOK, newImpressionView(res))
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
