package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"stellar-ads/internal/core/port"
)

// handleAdClick records a click and redirects to the advertiser. It
// expects campaignId and siteId query parameters and an optional wallet.
// Missing parameters result in HTTP 400. When the campaign or site
// cannot be resolved the viewer is still redirected to the fallback URL
// rather than shown an error page.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaignID := strings.TrimSpace(q.Get("campaignId"))
	siteID := strings.TrimSpace(q.Get("siteId"))
	if campaignID == "" || siteID == "" {
		h.badRequest(w, "campaignId and siteId are required")
		return
	}

	target, err := h.svc.RegisterClick(r.Context(), port.ClickRequest{
		CampaignID: campaignID,
		SiteID:     siteID,
		Viewer:     viewer(r, strings.TrimSpace(q.Get("wallet"))),
	})
	if err != nil {
		if errors.Is(err, port.ErrValidation) || target == "" {
			h.fail(w, r, "register click", err)
			return
		}
		h.logger.Warn("click not recorded",
			slog.String("campaign_id", campaignID),
			slog.String("site_id", siteID),
			slog.Any("error", err))
	}
	http.Redirect(w, r, target, http.StatusFound)
}
